package layzspa

import (
	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/prometheus/client_golang/prometheus"
	"net/http"
	"strconv"
	"strings"
)

// NewInstrumentedClient returns a Client whose API calls are recorded in the provided RequestMetrics.
func NewInstrumentedClient(m metrics.RequestMetrics, options ...Option) *Client {
	c := New(options...)
	c.HTTPClient = &http.Client{Transport: instrumentedRoundTripper(c.HTTPClient.Transport, m)}
	return c
}

func instrumentedRoundTripper(rt http.RoundTripper, m metrics.RequestMetrics) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return roundtripper.New(
		roundtripper.WithRequestMetrics(m),
		roundtripper.WithRoundTripper(rt),
	)
}

// NewRequestMetrics returns RequestMetrics that label each call with its method, API endpoint and status code.
func NewRequestMetrics(namespace, subsystem string, labels prometheus.Labels) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace:   namespace,
		Subsystem:   subsystem,
		ConstLabels: labels,
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			return request.Method, endpoint(request.URL.Path), strconv.Itoa(code)
		},
	})
}

// endpoint strips the API version prefix, so all calls to the same endpoint share a label.
func endpoint(path string) string {
	if path == "" {
		return "/"
	}
	if idx := strings.Index(path, "/v1/"); idx != -1 {
		path = path[idx+len("/v1"):]
	}
	return path
}

package collector

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/internal/poller/mocks"
	"github.com/rossdargan/layz-spa/internal/poller/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestCollector(t *testing.T) {
	tests := []struct {
		name    string
		update  *poller.Update
		want    string
		metrics []string
	}{
		{
			name: "no update",
		},
		{
			name: "heating",
			update: ptr(testutils.Update(
				testutils.WithTemperature(37, 38),
				testutils.WithPower(true, true),
				testutils.WithFilter(true),
			)),
			want: `
# HELP layzspa_away_mode 1 if the spa is in away mode, i.e. the spa or its heater is off
# TYPE layzspa_away_mode gauge
layzspa_away_mode{device="Garden Spa"} 0

# HELP layzspa_power_state Power state of a circuit. 1 if the circuit is on
# TYPE layzspa_power_state gauge
layzspa_power_state{circuit="bubbles",device="Garden Spa"} 0
layzspa_power_state{circuit="filter",device="Garden Spa"} 1
layzspa_power_state{circuit="heater",device="Garden Spa"} 1
layzspa_power_state{circuit="power",device="Garden Spa"} 1

# HELP layzspa_temperature_current Current water temperature in degrees celsius
# TYPE layzspa_temperature_current gauge
layzspa_temperature_current{device="Garden Spa"} 37

# HELP layzspa_temperature_target Target water temperature in degrees celsius
# TYPE layzspa_temperature_target gauge
layzspa_temperature_target{device="Garden Spa"} 38

# HELP layzspa_update_success 1 if the last poll of the spa's status succeeded
# TYPE layzspa_update_success gauge
layzspa_update_success{device="Garden Spa"} 1
`,
		},
		{
			name: "fahrenheit",
			update: ptr(testutils.Update(
				testutils.WithUnit("°F"),
				testutils.WithTemperature(95, 104),
			)),
			want: `
# HELP layzspa_away_mode 1 if the spa is in away mode, i.e. the spa or its heater is off
# TYPE layzspa_away_mode gauge
layzspa_away_mode{device="Garden Spa"} 1

# HELP layzspa_power_state Power state of a circuit. 1 if the circuit is on
# TYPE layzspa_power_state gauge
layzspa_power_state{circuit="bubbles",device="Garden Spa"} 0
layzspa_power_state{circuit="filter",device="Garden Spa"} 0
layzspa_power_state{circuit="heater",device="Garden Spa"} 0
layzspa_power_state{circuit="power",device="Garden Spa"} 0

# HELP layzspa_temperature_current Current water temperature in degrees celsius
# TYPE layzspa_temperature_current gauge
layzspa_temperature_current{device="Garden Spa"} 35

# HELP layzspa_temperature_target Target water temperature in degrees celsius
# TYPE layzspa_temperature_target gauge
layzspa_temperature_target{device="Garden Spa"} 40

# HELP layzspa_update_success 1 if the last poll of the spa's status succeeded
# TYPE layzspa_update_success gauge
layzspa_update_success{device="Garden Spa"} 1
`,
		},
		{
			name:    "failed without status",
			update:  ptr(testutils.Update(testutils.WithError(errors.New("failed")))),
			metrics: []string{"layzspa_update_success"},
			want: `
# HELP layzspa_update_success 1 if the last poll of the spa's status succeeded
# TYPE layzspa_update_success gauge
layzspa_update_success{device="Garden Spa"} 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, "Garden Spa", slog.Default())
			if tt.update != nil {
				c.Seed(*tt.update)
			}
			if tt.want == "" {
				assert.Zero(t, testutil.CollectAndCount(c))
				return
			}
			assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(tt.want), tt.metrics...))
		})
	}
}

func TestCollector_Run(t *testing.T) {
	ch := make(chan poller.Update)
	p := mocks.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Return().Once()

	c := New(p, "Garden Spa", slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- c.Run(ctx) }()

	ch <- testutils.Update(testutils.WithTemperature(37, 38))
	require.Eventually(t, func() bool { return testutil.CollectAndCount(c, "layzspa_temperature_current") == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
}

func ptr[T any](v T) *T {
	return &v
}

package collector

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/internal/waterheater"
	"log/slog"
	"sync"
)

var _ prometheus.Collector = &Collector{}

// Collector exports the last polled status of a spa as Prometheus metrics.
type Collector struct {
	Poller     poller.Poller
	Logger     *slog.Logger
	metrics    metrics
	lock       sync.RWMutex
	lastUpdate *poller.Update
}

type metrics struct {
	temperatureCurrent *prometheus.Desc
	temperatureTarget  *prometheus.Desc
	powerState         *prometheus.Desc
	awayMode           *prometheus.Desc
	updateSuccess      *prometheus.Desc
}

func newMetrics(device string) metrics {
	labels := prometheus.Labels{"device": device}
	return metrics{
		temperatureCurrent: prometheus.NewDesc(
			prometheus.BuildFQName("layzspa", "temperature", "current"),
			"Current water temperature in degrees celsius",
			nil,
			labels,
		),
		temperatureTarget: prometheus.NewDesc(
			prometheus.BuildFQName("layzspa", "temperature", "target"),
			"Target water temperature in degrees celsius",
			nil,
			labels,
		),
		powerState: prometheus.NewDesc(
			prometheus.BuildFQName("layzspa", "", "power_state"),
			"Power state of a circuit. 1 if the circuit is on",
			[]string{"circuit"},
			labels,
		),
		awayMode: prometheus.NewDesc(
			prometheus.BuildFQName("layzspa", "", "away_mode"),
			"1 if the spa is in away mode, i.e. the spa or its heater is off",
			nil,
			labels,
		),
		updateSuccess: prometheus.NewDesc(
			prometheus.BuildFQName("layzspa", "", "update_success"),
			"1 if the last poll of the spa's status succeeded",
			nil,
			labels,
		),
	}
}

func New(p poller.Poller, device string, logger *slog.Logger) *Collector {
	return &Collector{
		Poller:  p,
		Logger:  logger,
		metrics: newMetrics(device),
	}
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.Seed(update)
		}
	}
}

// Seed records an update received before Run subscribed to the poller.
func (c *Collector) Seed(update poller.Update) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.lastUpdate = &update
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.metrics.temperatureCurrent
	ch <- c.metrics.temperatureTarget
	ch <- c.metrics.powerState
	ch <- c.metrics.awayMode
	ch <- c.metrics.updateSuccess
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastUpdate == nil {
		return
	}

	ch <- prometheus.MustNewConstMetric(c.metrics.updateSuccess, prometheus.GaugeValue, boolValue(c.lastUpdate.Success()))

	status := c.lastUpdate.Status
	unit := waterheater.SpaUnit(status.TempSetUnit)
	if status.TempNow.Valid {
		ch <- prometheus.MustNewConstMetric(c.metrics.temperatureCurrent, prometheus.GaugeValue, waterheater.Convert(status.TempNow.Value, unit, waterheater.Celsius))
	}
	if status.TempSet.Valid {
		ch <- prometheus.MustNewConstMetric(c.metrics.temperatureTarget, prometheus.GaugeValue, waterheater.Convert(status.TempSet.Value, unit, waterheater.Celsius))
	}

	for circuit, on := range map[string]bool{
		"power":   bool(status.Power),
		"heater":  bool(status.HeatPower),
		"bubbles": bool(status.WavePower),
		"filter":  bool(status.FilterPower),
	} {
		ch <- prometheus.MustNewConstMetric(c.metrics.powerState, prometheus.GaugeValue, boolValue(on), circuit)
	}

	ch <- prometheus.MustNewConstMetric(c.metrics.awayMode, prometheus.GaugeValue, boolValue(!status.Heating()))
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/go-common/slackbot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rossdargan/layz-spa/internal/bot"
	"github.com/rossdargan/layz-spa/internal/collector"
	"github.com/rossdargan/layz-spa/internal/configflow"
	"github.com/rossdargan/layz-spa/internal/health"
	"github.com/rossdargan/layz-spa/internal/mqtt"
	"github.com/rossdargan/layz-spa/internal/poller"
	"github.com/rossdargan/layz-spa/internal/waterheater"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/spf13/viper"
	"log/slog"
	"net/http"
)

// Registry registers the application's collectors and serves them on the exporter address.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// New sets up every entry and returns the tasks that run them. An entry whose first refresh fails is not set up.
func New(ctx context.Context, cfg *viper.Viper, entries []configflow.Entry, version string, registry Registry, logger *slog.Logger) (Tasks, error) {
	hostUnit, err := waterheater.ParseUnit(cfg.GetString("display.unit"))
	if err != nil {
		return nil, err
	}

	m := layzspa.NewRequestMetrics("layzspa", "api", prometheus.Labels{"application": "layz-spa"})
	registry.MustRegister(m)
	client := layzspa.NewInstrumentedClient(m, layzspa.WithBaseURL(cfg.GetString("api.url")))

	var tasks Tasks
	var mqttClient mqtt.Client
	if cfg.GetBool("mqtt.enabled") {
		c, err := mqtt.Connect(ctx, mqtt.Config{
			Broker:      cfg.GetString("mqtt.broker"),
			Username:    cfg.GetString("mqtt.username"),
			Password:    cfg.GetString("mqtt.password"),
			ClientID:    cfg.GetString("mqtt.clientID"),
			StatusTopic: cfg.GetString("mqtt.baseTopic") + "/status",
		}, logger.With("component", "mqtt"))
		if err != nil {
			return nil, fmt.Errorf("mqtt: %w", err)
		}
		mqttClient = c
		tasks = append(tasks, c)
	}

	spas := make([]bot.Spa, 0, len(entries))
	mux := http.NewServeMux()
	for _, entry := range entries {
		l := logger.With("device", entry.Title)
		e, err := setupEntry(ctx, cfg, client, entry, hostUnit, l)
		if err != nil {
			l.Error("failed to set up entry", "entry", entry.ID, "err", err)
			continue
		}
		registry.MustRegister(e.collector)
		mux.Handle("/health/"+entry.Data.DID, e.health)
		tasks = append(tasks, e.poller, e.entity, e.collector, e.health)
		if mqttClient != nil {
			tasks = append(tasks, mqtt.NewBridge(mqttClient, e.entity, mqtt.BridgeConfig{
				DiscoveryPrefix: cfg.GetString("mqtt.discoveryPrefix"),
				BaseTopic:       cfg.GetString("mqtt.baseTopic"),
				StatusTopic:     cfg.GetString("mqtt.baseTopic") + "/status",
				Version:         version,
			}, l.With("component", "mqtt")))
		}
		spas = append(spas, e.entity)
	}
	if len(spas) == 0 {
		return nil, errors.New("no entries could be set up")
	}

	// Prometheus Server
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	tasks = append(tasks, newHTTPServer(cfg.GetString("exporter.addr"), metricsMux))

	// Health Endpoint
	tasks = append(tasks, newHTTPServer(cfg.GetString("health.addr"), mux))

	// Slackbot
	if token := cfg.GetString("slack.token"); token != "" {
		b := slackbot.New(
			token,
			slackbot.WithName("layz-spa "+version),
			slackbot.WithLogger(logger.With(slog.String("component", "slackbot"))),
		)
		tasks = append(tasks, bot.New(b, spas, logger.With(slog.String("component", "bot"))))
	}

	return tasks, nil
}

type spaTasks struct {
	poller    *poller.SpaPoller
	entity    *waterheater.WaterHeater
	collector *collector.Collector
	health    *health.Health
}

func setupEntry(ctx context.Context, cfg *viper.Viper, client *layzspa.Client, e configflow.Entry, hostUnit waterheater.Unit, l *slog.Logger) (spaTasks, error) {
	spa := client.Spa(e.Data.API, e.Data.DID)

	p := poller.New(spa, cfg.GetDuration("poller.interval"), cfg.GetDuration("poller.timeout"), l.With("component", "poller"))
	if err := p.FirstRefresh(ctx); err != nil {
		return spaTasks{}, fmt.Errorf("first refresh: %w", err)
	}

	t := spaTasks{
		poller:    p,
		entity:    waterheater.New(spa, p, e.Title, e.Data.DID, hostUnit, l.With("component", "waterheater")),
		collector: collector.New(p, e.Title, l.With("component", "collector")),
		health:    health.New(p, l.With("component", "health")),
	}
	if update, ok := p.LastUpdate(); ok {
		t.entity.Seed(update)
		t.collector.Seed(update)
		t.health.Seed(update)
	}
	return t, nil
}

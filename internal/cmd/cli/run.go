package cli

import (
	"context"
	"errors"
	"github.com/clambin/go-common/charmer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rossdargan/layz-spa/internal/app"
	"github.com/rossdargan/layz-spa/internal/configflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var runCmd = cobra.Command{
	Use:   "run",
	Short: "Run the bridge for all configured spas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx, viper.GetViper(), cmd.Root().Version, charmer.GetLogger(cmd))
	},
}

func run(ctx context.Context, v *viper.Viper, version string, logger *slog.Logger) error {
	logger.Info("layz-spa starting", "version", version)
	defer logger.Info("layz-spa stopped")

	entries, err := configflow.NewStore(v.GetString("entries.path")).Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("no spas configured. use 'login' to add one")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	tasks, err := app.New(ctx, v, entries, version, registry, logger)
	if err != nil {
		return err
	}
	return tasks.Run(ctx)
}

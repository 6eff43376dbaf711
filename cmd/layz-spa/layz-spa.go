package main

import (
	"github.com/rossdargan/layz-spa/internal/cmd/cli"
	"log/slog"
	"os"
)

var (
	// overridden during build
	version = "change-me"
)

func main() {
	cli.RootCmd.Version = version
	if err := cli.RootCmd.Execute(); err != nil {
		slog.Error("failed to run", "err", err)
		os.Exit(1)
	}
}

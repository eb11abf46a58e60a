// Command Beamcalc serves the beam checks as a JSON API. The config file is
// taken from BEAMCALC_CONFIG; the beamcalc CLI in cmd/beamcalc runs the same
// checks from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"Beamcalc/internal/config"
	"Beamcalc/internal/logging"
	"Beamcalc/internal/server"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logging:", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = server.New(cfg, version).Run(ctx)
	cancel()
	if err != nil {
		logging.Error("server", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

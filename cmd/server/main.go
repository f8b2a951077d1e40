package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cialfor/intake/internal/config"
	"github.com/cialfor/intake/internal/logging"
	"github.com/cialfor/intake/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logConfig := cfg.Logging()
	if err := logging.InitLogger(&logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, logger, server.AdapterGin); err != nil {
		logger.Error("Server stopped: %v", err)
		stop()
		logger.Close()
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

package server

import (
	"context"
	"fmt"
	"time"

	"github.com/cialfor/intake/internal/config"
	"github.com/cialfor/intake/internal/logging"
	"github.com/cialfor/intake/internal/telemetry"
)

// Run wires tracing, the mail transport and the HTTP server from cfg and
// serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *logging.Logger, adapter string) error {
	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint, ServiceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	sender, err := NewSender(cfg)
	if err != nil {
		return fmt.Errorf("init mail transport: %w", err)
	}

	srv, err := NewServer(cfg, sender, logger, adapter)
	if err != nil {
		return err
	}

	return srv.Start(ctx)
}

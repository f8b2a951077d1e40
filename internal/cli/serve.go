package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cialfor/intake/internal/server"
)

func newServeCmd() *cobra.Command {
	var adapter string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the contact endpoint",
		Long: `Serve POST /api/contact and GET /health until interrupted.

Example:
  intake serve                    # gin engine with the full middleware chain
  intake serve --adapter stdlib   # plain net/http handler`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()

			logger.Info("Starting server in %s mode", cfg.Environment)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, logger, adapter)
		},
	}

	cmd.Flags().StringVar(&adapter, "adapter", server.AdapterGin, "HTTP adapter: gin or stdlib")
	return cmd
}

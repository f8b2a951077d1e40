// Package cli implements the intake command line: serving the endpoint and
// a few operator helpers around the configured mail routing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cialfor/intake/internal/config"
	"github.com/cialfor/intake/internal/logging"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Cialfor contact inquiry intake",
		Long: `intake serves the public contact endpoint: it filters spam, rate limits
each client, validates the inquiry and forwards it by email to the info or
sales mailbox.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newSendTestCmd(),
		newRouteCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and the process-wide logger.
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logConfig := cfg.Logging()
	if err := logging.InitLogger(&logConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logging.GetLogger(), nil
}

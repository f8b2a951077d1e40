package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cialfor/intake/internal/intake"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <inquiryType>...",
		Short: "Show which mailbox each inquiry type is delivered to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()

			router := intake.Router{InfoAddress: cfg.InfoEmail, SalesAddress: cfg.SalesEmail}
			for _, inquiryType := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", inquiryType, router.Route(inquiryType))
			}
			return nil
		},
	}
}

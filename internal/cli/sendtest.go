package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/server"
)

func newSendTestCmd() *cobra.Command {
	sub := intake.Submission{
		Name:    "Intake Test",
		Email:   "no-reply@contact.cialfor.com",
		Message: "Test inquiry sent with intake send-test.",
	}
	var ip string

	cmd := &cobra.Command{
		Use:   "send-test",
		Short: "Send a test inquiry through the configured mail transport",
		Long: `Format a test inquiry and deliver it once through the configured transport,
bypassing the honeypot and rate limiter. Useful to check provider
credentials and mailbox routing.

Example:
  intake send-test --type partnership
  intake send-test --type pentest --email me@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()

			if missing := intake.Validate(sub); len(missing) > 0 {
				return fmt.Errorf("missing required fields: %v", missing)
			}

			sender, err := server.NewSender(cfg)
			if err != nil {
				return err
			}

			dispatcher := intake.NewDispatcher(sender, intake.DispatchConfig{
				From:    intake.FromAddress(cfg.FromName, cfg.FromEmail),
				Timeout: cfg.DeliveryTimeout,
			})
			router := intake.Router{InfoAddress: cfg.InfoEmail, SalesAddress: cfg.SalesEmail}
			env := intake.Envelope{
				To:      router.Route(sub.InquiryType),
				Message: intake.FormatMessage(sub, ip),
			}

			s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
			s.Writer = cmd.ErrOrStderr()
			s.Suffix = fmt.Sprintf(" Sending test inquiry to %s via %s...", env.To, cfg.Transport)
			s.Start()
			err = dispatcher.Dispatch(cmd.Context(), env)
			s.Stop()

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent %q to %s\n", env.Message.Subject, env.To)
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.InquiryType, "type", intake.InquiryGeneral, "inquiry type")
	cmd.Flags().StringVar(&sub.Name, "name", sub.Name, "submitter name")
	cmd.Flags().StringVar(&sub.Email, "email", sub.Email, "submitter email, used as reply-to")
	cmd.Flags().StringVar(&sub.Message, "message", sub.Message, "inquiry message")
	cmd.Flags().StringVar(&ip, "ip", "127.0.0.1", "client ip shown in the footer")
	return cmd
}

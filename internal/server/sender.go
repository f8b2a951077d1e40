package server

import (
	"fmt"

	"github.com/cialfor/intake/internal/config"
	"github.com/cialfor/intake/internal/mailer"
)

// NewSender builds the mail transport selected by MAIL_TRANSPORT.
func NewSender(cfg *config.Config) (mailer.Sender, error) {
	switch cfg.Transport {
	case config.TransportResend:
		sender, err := mailer.NewResendSender(cfg.ResendAPIKey)
		if err != nil {
			return nil, err
		}
		return sender, nil
	case config.TransportSMTP:
		sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			Security: cfg.SMTPSecurity,
		})
		if err != nil {
			return nil, err
		}
		return sender, nil
	default:
		return nil, fmt.Errorf("%w: unsupported MAIL_TRANSPORT %q", config.ErrInvalidConfig, cfg.Transport)
	}
}

package mailer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
}

type ResendOption func(*resend.Client) error

// WithResendBaseURL points the client at a different API root.
func WithResendBaseURL(raw string) ResendOption {
	return func(c *resend.Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse resend base url: %w", err)
		}
		c.BaseURL = u
		return nil
	}
}

func NewResendSender(apiKey string, opts ...ResendOption) (*ResendSender, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client := resend.NewCustomClient(&http.Client{Timeout: 30 * time.Second}, apiKey)
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return &ResendSender{client: client}, nil
}

func (s *ResendSender) Send(ctx context.Context, email Email) error {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

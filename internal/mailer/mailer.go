// Package mailer delivers formatted inquiry emails through a transactional
// email provider.
package mailer

import (
	"context"
	"errors"
)

// Email is one fully formatted outbound message.
type Email struct {
	From    string // display form, e.g. "Contact <no-reply@example.com>"
	To      string
	ReplyTo string // optional
	Subject string
	HTML    string
	Text    string // optional plain-text alternative
}

// Sender is the contract every provider implements. Send makes exactly one
// delivery attempt.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

var (
	ErrMissingAPIKey = errors.New("mailer: api key is required")
	ErrMissingHost   = errors.New("mailer: smtp host is required")
)

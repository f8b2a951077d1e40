package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// SMTP connection security modes
const (
	SecurityStartTLS = "starttls"
	SecurityTLS      = "tls"
	SecurityNone     = "none"
)

const defaultSMTPTimeout = 30 * time.Second

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Security string
	// TLSConfig overrides the default TLS settings, mostly for tests.
	TLSConfig *tls.Config
}

// SMTPSender delivers by relaying a MIME message through an SMTP server.
type SMTPSender struct {
	cfg SMTPConfig
	now func() time.Time
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, ErrMissingHost
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Security == "" {
		cfg.Security = SecurityStartTLS
	}
	return &SMTPSender{cfg: cfg, now: time.Now}, nil
}

func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	from, err := mail.ParseAddress(email.From)
	if err != nil {
		return fmt.Errorf("parse from address: %w", err)
	}
	to, err := mail.ParseAddress(email.To)
	if err != nil {
		return fmt.Errorf("parse to address: %w", err)
	}

	raw, err := BuildMessage(email, s.now())
	if err != nil {
		return err
	}

	client, err := s.dial()
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	timeout := defaultSMTPTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return ctx.Err()
		}
	}
	client.CommandTimeout = timeout
	client.SubmissionTimeout = timeout

	// go-smtp has no context support; closing the client unblocks it.
	stop := context.AfterFunc(ctx, func() { _ = client.Close() })
	defer stop()

	if s.cfg.Username != "" {
		if err := client.Auth(sasl.NewPlainClient("", s.cfg.Username, s.cfg.Password)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.SendMail(from.Address, []string{to.Address}, bytes.NewReader(raw)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("smtp send: %w", ctxErr)
		}
		return fmt.Errorf("smtp send: %w", err)
	}

	return client.Quit()
}

func (s *SMTPSender) dial() (*smtp.Client, error) {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	tlsConfig := s.cfg.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{ServerName: s.cfg.Host}
	}

	switch s.cfg.Security {
	case SecurityTLS:
		return smtp.DialTLS(addr, tlsConfig)
	case SecurityNone:
		return smtp.Dial(addr)
	default:
		return smtp.DialStartTLS(addr, tlsConfig)
	}
}

// BuildMessage renders email as a MIME message carrying the text body (when
// present) and the HTML body as inline alternatives.
func BuildMessage(email Email, now time.Time) ([]byte, error) {
	from, err := mail.ParseAddress(email.From)
	if err != nil {
		return nil, fmt.Errorf("parse from address: %w", err)
	}
	to, err := mail.ParseAddress(email.To)
	if err != nil {
		return nil, fmt.Errorf("parse to address: %w", err)
	}

	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{from})
	h.SetAddressList("To", []*mail.Address{to})
	if email.ReplyTo != "" {
		replyTo, err := mail.ParseAddress(email.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("parse reply-to address: %w", err)
		}
		h.SetAddressList("Reply-To", []*mail.Address{replyTo})
	}
	h.SetSubject(email.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("generate message id: %w", err)
	}

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("create mail writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("create inline writer: %w", err)
	}

	if email.Text != "" {
		if err := writePart(tw, "text/plain", email.Text); err != nil {
			return nil, err
		}
	}
	if err := writePart(tw, "text/html", email.HTML); err != nil {
		return nil, err
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("close inline writer: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close mail writer: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(tw *mail.InlineWriter, mediaType, body string) error {
	var ph mail.InlineHeader
	ph.SetContentType(mediaType, map[string]string{"charset": "utf-8"})
	ph.Set("Content-Transfer-Encoding", "quoted-printable")
	w, err := tw.CreatePart(ph)
	if err != nil {
		return fmt.Errorf("create %s part: %w", mediaType, err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("write %s part: %w", mediaType, err)
	}
	return w.Close()
}

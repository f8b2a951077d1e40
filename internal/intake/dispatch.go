package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/cialfor/intake/internal/mailer"
)

// ErrDelivery wraps every failure to hand a message to the provider.
var ErrDelivery = errors.New("delivery failed")

const tracerName = "github.com/cialfor/intake/internal/intake"

// Envelope is a formatted message plus its destination.
type Envelope struct {
	To      string
	Message Message
}

// DispatchConfig controls outbound delivery.
type DispatchConfig struct {
	From    string        // display form, e.g. "Cialfor Contact <no-reply@contact.cialfor.com>"
	Timeout time.Duration // per attempt; 0 disables
	RPS     float64       // provider throttle; 0 disables
	Burst   int
}

// Dispatcher makes exactly one delivery attempt per Envelope. There is no
// retry.
type Dispatcher struct {
	sender  mailer.Sender
	from    string
	timeout time.Duration
	limiter *rate.Limiter
	tracer  trace.Tracer
}

func NewDispatcher(sender mailer.Sender, cfg DispatchConfig) *Dispatcher {
	d := &Dispatcher{
		sender:  sender,
		from:    cfg.From,
		timeout: cfg.Timeout,
		tracer:  otel.Tracer(tracerName),
	}
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
	return d
}

// FromAddress formats a display name and address for the From header.
func FromAddress(name, address string) string {
	name = SanitizeHeader(name)
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

// Dispatch sends env through the configured provider. Any failure is
// returned wrapped in ErrDelivery.
func (d *Dispatcher) Dispatch(ctx context.Context, env Envelope) error {
	ctx, span := d.tracer.Start(ctx, "intake.Dispatch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("mail.to", env.To),
			attribute.Bool("mail.reply_to_set", env.Message.ReplyTo != ""),
		),
	)
	defer span.End()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "provider throttle")
			return fmt.Errorf("%w: provider throttle: %w", ErrDelivery, err)
		}
	}

	err := d.sender.Send(ctx, mailer.Email{
		From:    d.from,
		To:      env.To,
		ReplyTo: env.Message.ReplyTo,
		Subject: env.Message.Subject,
		HTML:    env.Message.HTML,
		Text:    env.Message.Text,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

package intake

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cialfor/intake/internal/logging"
)

// Limiter decides whether a key is over its submission budget. Every call
// counts as a submission.
type Limiter interface {
	CheckAndRecord(key string, now time.Time) bool
}

// Deliverer hands a formatted message to the outside world.
type Deliverer interface {
	Dispatch(ctx context.Context, env Envelope) error
}

// Service runs the intake pipeline: honeypot, rate limit, validation,
// routing, formatting and delivery, each a hard gate to the next.
type Service struct {
	limiter   Limiter
	router    Router
	deliverer Deliverer
	clock     func() time.Time
	logger    *logging.Logger
}

type ServiceOption func(*Service)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) { s.clock = clock }
}

func WithLogger(logger *logging.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

func NewService(limiter Limiter, router Router, deliverer Deliverer, opts ...ServiceOption) *Service {
	s := &Service{
		limiter:   limiter,
		router:    router,
		deliverer: deliverer,
		clock:     time.Now,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit processes one parsed submission from the client at ip. The method
// gate and body parsing belong to the adapter.
func (s *Service) Submit(ctx context.Context, sub Submission, ip string) Result {
	if IsHoneypotTripped(sub) {
		s.logger.Warn("Honeypot triggered from IP %s", ip)
		return Result{Outcome: Accepted, Suppressed: true}
	}

	if s.limiter.CheckAndRecord(ip, s.clock()) {
		s.logger.Warn("Rate limit exceeded for IP %s", ip)
		return Result{Outcome: TooManyRequests}
	}

	if missing := Validate(sub); len(missing) > 0 {
		s.logger.Debug("Rejected submission from IP %s: missing %s", ip, strings.Join(missing, ", "))
		return Result{Outcome: MissingFields, Missing: missing}
	}

	inquiryType := strings.TrimSpace(sub.InquiryType)
	env := Envelope{
		To:      s.router.Route(inquiryType),
		Message: FormatMessage(sub, ip),
	}

	if err := s.deliverer.Dispatch(ctx, env); err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Warn("Contact delivery cancelled for IP %s: %v", ip, err)
		} else {
			s.logger.Error("Contact API error: %v", err)
		}
		return Result{Outcome: InternalError}
	}

	s.logger.Info("Inquiry %q from IP %s delivered to %s", inquiryType, ip, env.To)
	return Result{Outcome: Accepted}
}

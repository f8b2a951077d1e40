package intake

import (
	"context"
	"sync"
	"time"

	"github.com/cialfor/intake/internal/mailer"
)

// fakeSender records every email and returns err.
type fakeSender struct {
	mu     sync.Mutex
	err    error
	emails []mailer.Email
}

func (f *fakeSender) Send(_ context.Context, email mailer.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, email)
	return f.err
}

func (f *fakeSender) sent() []mailer.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Email(nil), f.emails...)
}

// fakeClock is advanced explicitly by tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

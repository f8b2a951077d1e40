package intake

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// RateLimitConfig holds the sliding-window settings.
type RateLimitConfig struct {
	Window  time.Duration // trailing window per key
	Max     int           // submissions allowed inside Window
	MaxKeys int           // tracked keys before LRU eviction; 0 means unbounded
	Clock   func() time.Time
}

// DefaultRateLimitConfig returns 5 submissions per 10 minutes per ip.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Window:  10 * time.Minute,
		Max:     5,
		MaxKeys: 10000,
		Clock:   time.Now,
	}
}

// RateLimiter is a per-key sliding-window log. Every call records its
// timestamp, including calls that end up limited, so a client that keeps
// retrying stays limited.
type RateLimiter struct {
	cfg RateLimitConfig

	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front is most recently seen
}

type rateEntry struct {
	key  string
	hits []time.Time // oldest first
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	defaults := DefaultRateLimitConfig()
	if cfg.Window <= 0 {
		cfg.Window = defaults.Window
	}
	if cfg.Max <= 0 {
		cfg.Max = defaults.Max
	}
	if cfg.MaxKeys < 0 {
		cfg.MaxKeys = 0
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &RateLimiter{
		cfg:     cfg,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// CheckAndRecord drops the key's timestamps that fell out of the window,
// records now and reports whether the key is over the limit.
func (rl *RateLimiter) CheckAndRecord(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	el, ok := rl.entries[key]
	if ok {
		rl.lru.MoveToFront(el)
	} else {
		el = rl.lru.PushFront(&rateEntry{key: key})
		rl.entries[key] = el
		rl.evict()
	}

	entry := el.Value.(*rateEntry)
	recent := entry.hits[:0]
	for _, t := range entry.hits {
		if now.Sub(t) < rl.cfg.Window {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)

	limited := len(recent) > rl.cfg.Max

	// Only the newest Max+1 hits can change a future decision.
	if keep := rl.cfg.Max + 1; len(recent) > keep {
		recent = append([]time.Time(nil), recent[len(recent)-keep:]...)
	}
	entry.hits = recent

	return limited
}

// evict drops least recently seen keys until the table fits MaxKeys.
// Callers hold rl.mu.
func (rl *RateLimiter) evict() {
	if rl.cfg.MaxKeys == 0 {
		return
	}
	for rl.lru.Len() > rl.cfg.MaxKeys {
		back := rl.lru.Back()
		rl.lru.Remove(back)
		delete(rl.entries, back.Value.(*rateEntry).key)
	}
}

// Sweep removes keys whose newest timestamp is outside the window and
// returns how many were removed.
func (rl *RateLimiter) Sweep(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for el := rl.lru.Back(); el != nil; {
		prev := el.Prev()
		entry := el.Value.(*rateEntry)
		if len(entry.hits) == 0 || now.Sub(entry.hits[len(entry.hits)-1]) >= rl.cfg.Window {
			rl.lru.Remove(el)
			delete(rl.entries, entry.key)
			removed++
		}
		el = prev
	}
	return removed
}

// Len reports the number of tracked keys.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.lru.Len()
}

// StartSweeper runs Sweep every interval until ctx is done. onSweep, when
// non-nil, receives the number of keys removed by each pass.
func (rl *RateLimiter) StartSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := rl.Sweep(rl.cfg.Clock())
				if onSweep != nil {
					onSweep(removed)
				}
			}
		}
	}()
}

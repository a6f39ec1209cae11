// Package ratelimiter paces batch calls to the upstream API.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface limits how often an operation may run.
type RateLimiterInterface interface {
	// WaitIfNeeded blocks until another call is allowed or ctx is done.
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiter allows limit calls per fixed window of length interval.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter creates a RateLimiter. A limit below 1 disables limiting.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
		sleep:     sleepContext,
	}
}

// WaitIfNeeded counts a call and sleeps out the rest of the window once the limit is hit.
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	if rl.limit < 1 {
		return ctx.Err()
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count <= rl.limit {
		return ctx.Err()
	}

	if wait := rl.interval - now.Sub(rl.lastReset); wait > 0 {
		slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", wait)
		if err := rl.sleep(ctx, wait); err != nil {
			rl.count--
			return err
		}
	}
	rl.count = 1
	rl.lastReset = rl.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package ports

import (
	"context"
	"time"
)

// RateLimitConfig is one counter policy: at most MaxRequests per Window.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// RateLimitResult reports a single limiter decision. RetryAfterSeconds is
// advisory; zero means the limiter could not compute a wait time and callers
// should fall back to the configured window.
type RateLimitResult struct {
	Allowed           bool
	Remaining         int
	RetryAfterSeconds int
}

// RateLimiter records and queries per-IP/per-action counters. The windowing
// algorithm is entirely the implementation's concern.
type RateLimiter interface {
	CheckLimit(ctx context.Context, ip, action string, cfg RateLimitConfig) (RateLimitResult, error)
	Reset(ctx context.Context, ip, action string) error
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskdeck/auth-service/internal/ports"
)

// RedisRateLimiter implements fixed-window request counting in Redis.
// A window starts on the first request for an (ip, action) pair and the
// counter key expires with the window, so idle clients carry no state.
type RedisRateLimiter struct {
	client *redis.Client
}

// NewRedisRateLimiter creates a rate limiter backed by Redis counters.
func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func limiterKey(ip, action string) string {
	return "auth:ratelimit:" + action + ":" + ip
}

func (l *RedisRateLimiter) CheckLimit(ctx context.Context, ip, action string, cfg ports.RateLimitConfig) (ports.RateLimitResult, error) {
	key := limiterKey(ip, action)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return ports.RateLimitResult{}, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, cfg.Window).Err(); err != nil {
			return ports.RateLimitResult{}, err
		}
	}

	remaining := cfg.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	result := ports.RateLimitResult{
		Allowed:   int(count) <= cfg.MaxRequests,
		Remaining: remaining,
	}
	if result.Allowed {
		return result, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return ports.RateLimitResult{}, err
	}
	if ttl > 0 {
		result.RetryAfterSeconds = int(ttl / time.Second)
		if ttl%time.Second != 0 {
			result.RetryAfterSeconds++
		}
	} else {
		// Counter without TTL means the Expire above was lost; re-arm the
		// window rather than locking the client out indefinitely.
		_ = l.client.Expire(ctx, key, cfg.Window).Err()
		result.RetryAfterSeconds = int(cfg.Window / time.Second)
	}
	return result, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, ip, action string) error {
	return l.client.Del(ctx, limiterKey(ip, action)).Err()
}

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Connect initializes the Redis client backing the rate limiter.
// Both redis:// URLs and bare host:port input are accepted so local/dev and
// container config paths stay simple.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	slog.Default().InfoContext(ctx, "redis client initialized",
		"service", "taskdeck-auth",
		"module", "cache",
		"layer", "adapter",
		"operation", "connect",
		"outcome", "success",
	)
	return client, nil
}

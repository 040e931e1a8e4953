// Package ratelimit bounds repeated attempts of sensitive actions.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dracula-tv/media-backend/internal/model"
)

// ErrLimited is returned when the key has used up its attempts for the window.
var ErrLimited = errors.New("too many attempts")

const keyPrefix = "attempts:"

var (
	_ model.AttemptLimiter = (*Redis)(nil)
	_ model.AttemptLimiter = Noop{}
)

// Redis is a fixed-window attempt counter kept in redis.
type Redis struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

// NewRedisClient returns a client for redisURL (e.g. redis://localhost:6379/0) after a ping.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("empty redis url")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewRedis creates a limiter allowing maxAttempts per window for every key.
func NewRedis(client redis.Cmdable, maxAttempts int, window time.Duration) *Redis {
	return &Redis{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Allow records an attempt and returns ErrLimited once the window is exhausted.
func (r *Redis) Allow(ctx context.Context, key string) error {
	k := keyPrefix + key

	// SET NX starts the window with its TTL; INCR keeps the TTL of an existing key.
	pipe := r.client.TxPipeline()
	pipe.SetNX(ctx, k, 0, r.window)
	incr := pipe.Incr(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to count attempt: %w", err)
	}

	if incr.Val() > r.maxAttempts {
		return ErrLimited
	}
	return nil
}

// Reset clears the counter, typically after a successful attempt.
func (r *Redis) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}

// Noop never limits. It is used when no redis is configured.
type Noop struct{}

func (Noop) Allow(context.Context, string) error { return nil }
func (Noop) Reset(context.Context, string) error { return nil }

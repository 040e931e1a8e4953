package model

import "context"

// AttemptLimiter bounds how often an action may be tried for a key.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

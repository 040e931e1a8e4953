package model

import (
	"context"
	"time"
)

// AvatarStorage issues time-limited URLs for avatar objects.
type AvatarStorage interface {
	PresignUpload(ctx context.Context, key string) (PresignedURL, error)
	PresignDownload(ctx context.Context, key string) (PresignedURL, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// PresignedURL is a signed object URL and the moment it stops working.
type PresignedURL struct {
	URL       string
	ExpiresAt time.Time
}

package minio

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/dracula-tv/media-backend/internal/model"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PresignedPutObject(ctx context.Context, bucketName, objectName string, expires time.Duration) (*url.URL, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

var _ model.AvatarStorage = (*Client)(nil)

// Client signs avatar object URLs in a single bucket.
type Client struct {
	api            minioAPI
	bucket         string
	uploadExpiry   time.Duration
	downloadExpiry time.Duration
	now            func() time.Time
}

// Options configures URL lifetimes.
type Options struct {
	Bucket         string
	UploadExpiry   time.Duration
	DownloadExpiry time.Duration
}

// NewClient creates a new MinIO storage client using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, opts Options) (*Client, error) {
	return NewClientWithAPI(ctx, client, opts)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, opts Options) (*Client, error) {
	c := &Client{
		api:            api,
		bucket:         opts.Bucket,
		uploadExpiry:   opts.UploadExpiry,
		downloadExpiry: opts.DownloadExpiry,
		now:            time.Now,
	}

	err := c.ensureBucketExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

// ensureBucketExists creates the bucket if it doesn't exist
func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// PresignUpload returns a URL the browser can PUT the object to.
func (c *Client) PresignUpload(ctx context.Context, key string) (model.PresignedURL, error) {
	expiresAt := c.now().Add(c.uploadExpiry)
	u, err := c.api.PresignedPutObject(ctx, c.bucket, key, c.uploadExpiry)
	if err != nil {
		return model.PresignedURL{}, fmt.Errorf("%w: failed to presign upload: %v", model.ErrStorageUnavailable, err)
	}
	return model.PresignedURL{URL: u.String(), ExpiresAt: expiresAt}, nil
}

// PresignDownload returns a URL the browser can GET the object from.
func (c *Client) PresignDownload(ctx context.Context, key string) (model.PresignedURL, error) {
	expiresAt := c.now().Add(c.downloadExpiry)
	u, err := c.api.PresignedGetObject(ctx, c.bucket, key, c.downloadExpiry, nil)
	if err != nil {
		return model.PresignedURL{}, fmt.Errorf("%w: failed to presign download: %v", model.ErrStorageUnavailable, err)
	}
	return model.PresignedURL{URL: u.String(), ExpiresAt: expiresAt}, nil
}

// Delete deletes object from MinIO
func (c *Client) Delete(ctx context.Context, key string) error {
	err := c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Exists checks if object exists in MinIO
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.api.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}

package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks boardinghouse/internal/storage Storage

// Storage defines the interface for object storage operations.
type Storage interface {
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
}

// Ensure S3Client implements Storage
var _ Storage = (*S3Client)(nil)

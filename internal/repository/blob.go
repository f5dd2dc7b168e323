package repository

import (
	"context"
	"time"
)

// Blob is stored attachment content.
type Blob struct {
	Key         string
	ContentType string
	Size        int64
	Data        []byte
	CreatedAt   time.Time
}

// BlobStore holds attachment bytes by key. Delete of a missing key is not
// an error.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (*Blob, error)
	Delete(ctx context.Context, key string) error
}

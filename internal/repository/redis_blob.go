package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const blobKeyPrefix = "blob:"

// RedisBlobStore keeps each blob in a hash under prefix+"blob:"+key. Reads
// go to reader and writes to writer, which differ inside a transaction.
type RedisBlobStore struct {
	reader redis.Cmdable
	writer redis.Cmdable
	prefix string
}

func NewRedisBlobStore(client redis.Cmdable, prefix string) *RedisBlobStore {
	return &RedisBlobStore{reader: client, writer: client, prefix: prefix}
}

func (r *RedisBlobStore) key(k string) string { return r.prefix + blobKeyPrefix + k }

func (r *RedisBlobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	err := r.writer.HSet(ctx, r.key(key),
		"content_type", contentType,
		"size", len(data),
		"data", data,
		"created_at", nowUTC(),
	).Err()
	if err != nil {
		return fmt.Errorf("storing blob %s: %w", key, err)
	}
	return nil
}

func (r *RedisBlobStore) Get(ctx context.Context, key string) (*Blob, error) {
	fields, err := r.reader.HGetAll(ctx, r.key(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("blob %s: %w", key, ErrBlobNotFound)
	}
	b := &Blob{
		Key:         key,
		ContentType: fields["content_type"],
		Data:        []byte(fields["data"]),
	}
	b.Size, _ = strconv.ParseInt(fields["size"], 10, 64)
	if t, err := time.Parse(time.RFC3339, fields["created_at"]); err == nil {
		b.CreatedAt = t
	}
	return b, nil
}

func (r *RedisBlobStore) Delete(ctx context.Context, key string) error {
	if err := r.writer.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("deleting blob %s: %w", key, err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces every key the Redis backend writes.
const DefaultRedisPrefix = "fulfill:"

// RedisKV stores each value under prefix+key with no expiry.
type RedisKV struct {
	client redis.Cmdable
	prefix string
}

func NewRedisKV(client redis.Cmdable, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// redisTxKV reads committed values from the client and queues writes on a
// MULTI/EXEC pipeline. Values written earlier in the same transaction are
// returned by Get.
type redisTxKV struct {
	client  redis.Cmdable
	pipe    redis.Pipeliner
	prefix  string
	pending map[string]string
}

func (r *redisTxKV) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := r.pending[key]; ok {
		return v, true, nil
	}
	return NewRedisKV(r.client, r.prefix).Get(ctx, key)
}

func (r *redisTxKV) Set(ctx context.Context, key, value string) error {
	r.pending[key] = value
	r.pipe.Set(ctx, r.prefix+key, value, 0)
	return nil
}

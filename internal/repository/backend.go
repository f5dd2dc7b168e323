package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/alexanderramin/fulfill/internal/db"
)

// Backend groups the storage a running process works against.
type Backend struct {
	Gateway *Gateway
	Blobs   BlobStore
	UoW     UnitOfWork
	Name    string

	close func() error
}

// Close releases the underlying connection.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// NewSQLiteBackend wraps an open database. Close closes database.
func NewSQLiteBackend(database *sql.DB) *Backend {
	return &Backend{
		Gateway: NewGateway(NewSQLiteKV(database)),
		Blobs:   NewSQLiteBlobStore(database),
		UoW:     NewSQLiteUnitOfWork(db.NewSQLiteUnitOfWork(database)),
		Name:    "sqlite",
		close:   database.Close,
	}
}

// OpenSQLiteBackend opens (and migrates) the database file at path.
func OpenSQLiteBackend(path string) (*Backend, error) {
	database, err := db.OpenDB(path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteBackend(database), nil
}

// NewRedisBackend wraps a connected client. Close closes client.
func NewRedisBackend(client redis.UniversalClient, prefix string) *Backend {
	return &Backend{
		Gateway: NewGateway(NewRedisKV(client, prefix)),
		Blobs:   NewRedisBlobStore(client, prefix),
		UoW:     NewRedisUnitOfWork(client, prefix),
		Name:    "redis",
		close:   client.Close,
	}
}

// RedisOptions configures OpenRedisBackend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// OpenRedisBackend connects to Redis and verifies the connection with PING.
func OpenRedisBackend(ctx context.Context, opts RedisOptions) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return NewRedisBackend(client, prefix), nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/alexanderramin/fulfill/internal/db"
)

// Tx is the storage a unit of work hands to its callback. Writes through
// either field commit or roll back together.
type Tx struct {
	Gateway *Gateway
	Blobs   BlobStore
}

// UnitOfWork runs fn atomically against one backend.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// SQLiteUnitOfWork binds a Tx to a database transaction.
type SQLiteUnitOfWork struct {
	uow db.UnitOfWork
}

func NewSQLiteUnitOfWork(uow db.UnitOfWork) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{uow: uow}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return u.uow.WithinTx(ctx, func(ctx context.Context, conn db.DBTX) error {
		return fn(ctx, Tx{
			Gateway: NewGateway(NewSQLiteKV(conn)),
			Blobs:   NewSQLiteBlobStore(conn),
		})
	})
}

// RedisUnitOfWork queues every write made by fn on a MULTI/EXEC pipeline
// and executes it only when fn succeeds. Reads see committed data plus the
// collection values fn has already written.
type RedisUnitOfWork struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisUnitOfWork(client redis.UniversalClient, prefix string) *RedisUnitOfWork {
	return &RedisUnitOfWork{client: client, prefix: prefix}
}

func (u *RedisUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	pipe := u.client.TxPipeline()

	defer func() {
		if p := recover(); p != nil {
			pipe.Discard()
			panic(p)
		}
	}()

	kv := &redisTxKV{client: u.client, pipe: pipe, prefix: u.prefix, pending: map[string]string{}}
	blobs := &RedisBlobStore{reader: u.client, writer: pipe, prefix: u.prefix}
	if err := fn(ctx, Tx{Gateway: NewGateway(kv), Blobs: blobs}); err != nil {
		pipe.Discard()
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

package testutil

import (
	"database/sql"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/alexanderramin/fulfill/internal/db"
	"github.com/alexanderramin/fulfill/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestBackend returns a SQLite backend over a fresh in-memory database.
func NewTestBackend(t *testing.T) *repository.Backend {
	t.Helper()
	return repository.NewSQLiteBackend(NewTestDB(t))
}

// NewTestRedis starts an in-process Redis server and returns a client for it.
func NewTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// NewRedisTestBackend returns a Redis backend over an in-process server.
func NewRedisTestBackend(t *testing.T) *repository.Backend {
	t.Helper()
	_, client := NewTestRedis(t)
	return repository.NewRedisBackend(client, repository.DefaultRedisPrefix)
}

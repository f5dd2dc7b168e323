package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fulfill/internal/db"
)

// SQLiteBlobStore keeps blobs in the attachment_blobs table.
type SQLiteBlobStore struct {
	db db.DBTX
}

func NewSQLiteBlobStore(conn db.DBTX) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: conn}
}

func (s *SQLiteBlobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO attachment_blobs (key, content_type, size, data, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		key, contentType, len(data), data, nowUTC())
	if err != nil {
		return fmt.Errorf("storing blob %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteBlobStore) Get(ctx context.Context, key string) (*Blob, error) {
	var (
		b         = Blob{Key: key}
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT content_type, size, data, created_at FROM attachment_blobs WHERE key = ?`, key).
		Scan(&b.ContentType, &b.Size, &b.Data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("blob %s: %w", key, ErrBlobNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		b.CreatedAt = t
	}
	return &b, nil
}

func (s *SQLiteBlobStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attachment_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting blob %s: %w", key, err)
	}
	return nil
}

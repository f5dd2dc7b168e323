package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	// One row per named collection; value is the collection's JSON array.
	`CREATE TABLE IF NOT EXISTS collections (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attachment_blobs (
		key          TEXT PRIMARY KEY,
		content_type TEXT NOT NULL DEFAULT '',
		size         INTEGER NOT NULL DEFAULT 0,
		data         BLOB NOT NULL,
		created_at   TEXT NOT NULL
	)`,
}

// Migrate applies every schema statement. It is safe to run repeatedly.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Package sqlite is the persistence layer: browsers, bookmarks and issued
// token digests live in a single embedded SQLite database. All access is
// serialized through one mutex; expected load is a handful of personal
// devices syncing periodically, so simplicity wins over throughput.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS browsers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    device_name TEXT NOT NULL,
    profile_name TEXT NOT NULL,
    UNIQUE(name, device_name, profile_name)
);

CREATE TABLE IF NOT EXISTS bookmarks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    browser_id INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL,
    folder_path TEXT NOT NULL DEFAULT '',
    created_at TEXT,
    updated_at TEXT NOT NULL,
    UNIQUE(browser_id, url, folder_path),
    FOREIGN KEY (browser_id) REFERENCES browsers(id)
);

CREATE TABLE IF NOT EXISTS tokens (
    digest TEXT PRIMARY KEY,
    issued_at TEXT NOT NULL
);
`

// timeLayout is fixed-width UTC with nanoseconds, so lexicographic order on
// stored timestamps equals chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps the SQLite database behind a single mutex. At most one store
// operation runs at a time process-wide; readers never observe a partially
// applied batch.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The mutex already serializes access; a single connection keeps the
	// driver from ever hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.PingContext(ctx)
}

// Counts returns the number of stored browsers and bookmarks.
func (s *Store) Counts(ctx context.Context) (browsers, bookmarks int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM browsers").Scan(&browsers); err != nil {
		return 0, 0, fmt.Errorf("failed to count browsers: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks").Scan(&bookmarks); err != nil {
		return 0, 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return browsers, bookmarks, nil
}

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

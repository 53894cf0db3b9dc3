package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/syncmarks/syncmarks/internal/domain"
)

// ReconcileBookmarks applies one batch of incoming records for the given
// browser and reports how many rows it inserted and updated.
//
// Each record is classified by its dedup key (browser_id, url, folder_path):
// a hit overwrites the title (even with an empty one), fills created_at only
// if it was previously null, and refreshes updated_at; a miss inserts a new
// row. Every row touched by one call carries the same updated_at watermark.
// When a batch contains two records with the same key, the later record wins,
// since each lookup runs against the state left by its predecessors.
//
// The batch is a single transaction: on any failure it is rolled back whole.
func (s *Store) ReconcileBookmarks(ctx context.Context, browserID int64, records []domain.BookmarkRecord) (inserted, updated int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin reconcile transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	watermark := now()

	for i := range records {
		rec := &records[i]
		folder := rec.FolderPath // absent folders decode to "", never null

		var id int64
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM bookmarks WHERE browser_id = ? AND url = ? AND folder_path = ?",
			browserID, rec.URL, folder,
		).Scan(&id)

		switch {
		case err == nil:
			_, err = tx.ExecContext(ctx,
				"UPDATE bookmarks SET title = ?, created_at = COALESCE(?, created_at), updated_at = ? WHERE id = ?",
				rec.Title, rec.CreatedAt, watermark, id,
			)
			if err != nil {
				return 0, 0, fmt.Errorf("failed to update bookmark: %w", err)
			}
			updated++

		case errors.Is(err, sql.ErrNoRows):
			_, err = tx.ExecContext(ctx,
				"INSERT INTO bookmarks (browser_id, title, url, folder_path, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
				browserID, rec.Title, rec.URL, folder, rec.CreatedAt, watermark,
			)
			if err != nil {
				return 0, 0, fmt.Errorf("failed to insert bookmark: %w", err)
			}
			inserted++

		default:
			return 0, 0, fmt.Errorf("failed to look up bookmark: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit reconcile transaction: %w", err)
	}
	return inserted, updated, nil
}

// ListBookmarks returns every stored bookmark joined with its owning browser,
// most recently touched first (ties broken by insertion order). Read-only.
func (s *Store) ListBookmarks(ctx context.Context) ([]domain.BookmarkView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, br.name, br.device_name, br.profile_name,
		       b.title, b.url, b.folder_path, b.created_at, b.updated_at
		FROM bookmarks b
		JOIN browsers br ON br.id = b.browser_id
		ORDER BY b.updated_at DESC, b.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	views := make([]domain.BookmarkView, 0, 64)
	for rows.Next() {
		var v domain.BookmarkView
		if err := rows.Scan(
			&v.ID, &v.BrowserName, &v.DeviceName, &v.ProfileName,
			&v.Title, &v.URL, &v.FolderPath, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmark rows: %w", err)
	}
	return views, nil
}

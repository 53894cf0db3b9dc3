package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ResolveOrCreateBrowser maps a (name, device, profile) triple to its stable
// browser id, inserting a new row on first sight. The triple is unique; the
// id is never reused and the row is never updated afterwards.
//
// The select-then-insert runs under the store mutex, so two concurrent
// first-time resolutions cannot both insert. The UNIQUE constraint is kept as
// a backstop: on an insert conflict the existing row is re-read and its id
// returned.
func (s *Store) ResolveOrCreateBrowser(ctx context.Context, name, deviceName, profileName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.lookupBrowser(ctx, name, deviceName, profileName)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up browser: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO browsers (name, device_name, profile_name) VALUES (?, ?, ?)",
		name, deviceName, profileName,
	)
	if err != nil {
		// Conflict-then-reread: if another writer won the race, the unique
		// triple now resolves.
		if id, rerr := s.lookupBrowser(ctx, name, deviceName, profileName); rerr == nil {
			return id, nil
		}
		return 0, fmt.Errorf("failed to insert browser: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted browser id: %w", err)
	}
	return id, nil
}

func (s *Store) lookupBrowser(ctx context.Context, name, deviceName, profileName string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM browsers WHERE name = ? AND device_name = ? AND profile_name = ?",
		name, deviceName, profileName,
	).Scan(&id)
	return id, err
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SaveTokenDigest appends a token digest to the trust store. The plaintext
// token never reaches this layer. The write is durable before the call
// returns; a failure here means the token was not issued.
func (s *Store) SaveTokenDigest(ctx context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO tokens (digest, issued_at) VALUES (?, ?)",
		digest, now(),
	); err != nil {
		return fmt.Errorf("failed to save token digest: %w", err)
	}
	return nil
}

// HasTokenDigest reports whether a digest is present in the trust store.
func (s *Store) HasTokenDigest(ctx context.Context, digest string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM tokens WHERE digest = ?", digest,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up token digest: %w", err)
	}
	return true, nil
}

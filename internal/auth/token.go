// Package auth issues and verifies the opaque bearer tokens guarding the API.
// Only SHA-256 digests of tokens are ever persisted; the plaintext exists
// exactly once, in the issuance response.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// tokenBytes gives 256 bits of entropy, 64 hex characters on the wire.
const tokenBytes = 32

// TrustStore is the durable, append-only set of issued token digests.
type TrustStore interface {
	SaveTokenDigest(ctx context.Context, digest string) error
	HasTokenDigest(ctx context.Context, digest string) (bool, error)
}

// Service issues tokens and answers verification queries. Verification
// results are cached in a bounded LRU keyed by digest; only positive results
// are cached, so a token issued after a failed probe is visible immediately,
// and the cache dies with the process.
type Service struct {
	store TrustStore
	cache *lru.Cache[string, struct{}]
	ttl   time.Duration
}

// New builds a Service. ttl is purely advisory: it is reported to the caller
// at issuance and enforced nowhere.
func New(store TrustStore, cacheSize int, ttl time.Duration) (*Service, error) {
	cache, err := lru.New[string, struct{}](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}
	return &Service{store: store, cache: cache, ttl: ttl}, nil
}

// Issue generates a fresh token, durably records its digest, and returns the
// plaintext. On storage failure nothing is issued and the error surfaces.
func (s *Service) Issue(ctx context.Context) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	d := digest(token)
	if err := s.store.SaveTokenDigest(ctx, d); err != nil {
		return "", err
	}
	// Write-through so the token just handed out verifies without a store
	// round-trip.
	s.cache.Add(d, struct{}{})

	return token, nil
}

// Verify reports whether candidate is a previously issued token. Empty or
// blank input is invalid; a trust-store read failure is invalid (fail
// closed). Secret material is only ever compared through fixed-length
// digests used as exact keys, never byte-by-byte against the plaintext.
func (s *Service) Verify(ctx context.Context, candidate string) bool {
	if strings.TrimSpace(candidate) == "" {
		return false
	}

	d := digest(candidate)
	if _, ok := s.cache.Get(d); ok {
		return true
	}

	ok, err := s.store.HasTokenDigest(ctx, d)
	if err != nil || !ok {
		return false
	}
	s.cache.Add(d, struct{}{})
	return true
}

// TTL is the advisory token lifetime reported at issuance.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

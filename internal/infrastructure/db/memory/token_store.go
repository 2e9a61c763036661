package memory

import (
	"context"
	"sync"
	"time"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
)

type session struct {
	userID    string
	expiresAt time.Time
}

// TokenStore is the in-process session table. Expired entries are dropped
// lazily on lookup.
type TokenStore struct {
	mu       sync.Mutex
	sessions map[string]session
}

var _ ports.TokenStore = (*TokenStore)(nil)

func NewTokenStore() *TokenStore {
	return &TokenStore{sessions: make(map[string]session)}
}

func (s *TokenStore) Save(_ context.Context, tokenID, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenID] = session{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *TokenStore) Lookup(_ context.Context, tokenID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[tokenID]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, tokenID)
		return "", domain.ErrSessionNotFound
	}
	return sess.userID, nil
}

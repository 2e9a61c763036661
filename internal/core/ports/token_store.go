package ports

import (
	"context"
	"time"
)

// TokenStore records issued token ids (jti) against their user for the token
// lifetime, giving each bearer token a recoverable back-reference and a
// revocation point.
type TokenStore interface {
	// Save registers tokenID as a live session for userID until ttl elapses.
	Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error

	// Lookup returns the user id a live session belongs to, or
	// domain.ErrSessionNotFound when the session is absent or expired.
	Lookup(ctx context.Context, tokenID string) (string, error)
}

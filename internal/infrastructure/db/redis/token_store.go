package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
)

const sessionKeyPrefix = "session:"

// TokenStore records issued token ids in Redis, keyed session:<jti> with the
// token TTL, so the key expires together with the token itself.
type TokenStore struct {
	client *redis.Client
}

var _ ports.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+tokenID, userID, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *TokenStore) Lookup(ctx context.Context, tokenID string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return userID, nil
}

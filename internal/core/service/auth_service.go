package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

// AuthService verifies credentials against the directory and mints HS256
// bearer tokens. Each issued token's jti is recorded in the token store for
// the token lifetime.
type AuthService struct {
	directory ports.UserDirectory
	tokens    ports.TokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(directory ports.UserDirectory, tokens ports.TokenStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 10 * time.Minute
	}
	return &AuthService{
		directory: directory,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login returns "Bearer <jwt>" on success. Lookup failure and hash mismatch
// collapse into the same ErrInvalidCredentials so the response never reveals
// whether the email exists.
func (s *AuthService) Login(ctx context.Context, payload validate.CredentialsPayload) (string, error) {
	if ferr := validate.Credentials(payload); ferr != nil {
		return "", ferr
	}

	user, err := s.directory.FindByEmail(ctx, *payload.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*payload.Password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	tokenID := xid.New().String()
	signed, err := s.generateToken(user, tokenID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.tokens.Save(ctx, tokenID, user.ID, s.tokenTTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return "Bearer " + signed, nil
}

// Verify resolves a bearer token back to its user id: signature and expiry
// via the JWT itself, liveness via the session recorded at issuance.
func (s *AuthService) Verify(ctx context.Context, rawToken string) (string, error) {
	raw := strings.TrimSpace(rawToken)
	if parts := strings.SplitN(raw, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		raw = parts[1]
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredentials
	}

	tokenID, _ := claims["jti"].(string)
	sub, _ := claims["sub"].(string)
	userID, err := s.tokens.Lookup(ctx, tokenID)
	if err != nil || userID != sub || sub == "" {
		return "", domain.ErrInvalidCredentials
	}
	return sub, nil
}

func (s *AuthService) generateToken(user *domain.User, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":           user.ID,
		"email":         user.Email,
		"administrador": user.AdminString(),
		"jti":           tokenID,
		"exp":           time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

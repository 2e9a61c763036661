package ports

import (
	"context"

	"github.com/serverest/usuarios-api/internal/core/validate"
)

// AuthService issues and resolves bearer tokens.
type AuthService interface {
	// Login checks the credentials payload and, on a match, returns a fresh
	// bearer token in the form "Bearer <jwt>". Unknown email and wrong
	// password are indistinguishable: both yield ErrInvalidCredentials.
	Login(ctx context.Context, payload validate.CredentialsPayload) (string, error)

	// Verify resolves a bearer token (with or without the "Bearer " prefix)
	// back to the id of the user it was issued to. Fails on bad signature,
	// expiry, or a revoked session.
	Verify(ctx context.Context, rawToken string) (string, error)
}

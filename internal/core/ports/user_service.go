package ports

import (
	"context"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

// UserService covers registration and the listing query gateway.
type UserService interface {
	// Register validates the payload, hashes the password, and inserts the
	// user. Returns the new id, or a *domain.FieldError / ErrEmailInUse.
	Register(ctx context.Context, payload validate.RegistrationPayload) (string, error)

	// List resolves raw query filters into a user listing. Any key outside
	// the filter whitelist fails the whole request with *domain.ParamError;
	// no filters means every user.
	List(ctx context.Context, filters map[string]string) ([]*domain.User, error)
}

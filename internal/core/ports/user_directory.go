package ports

import (
	"context"

	"github.com/serverest/usuarios-api/internal/core/domain"
)

// UserDirectory is the authoritative store of user records and the sole
// owner of email uniqueness.
type UserDirectory interface {
	// Insert atomically checks email uniqueness and stores the user,
	// returning the assigned id. Concurrent inserts with the same email
	// never both succeed; the loser gets domain.ErrEmailInUse.
	Insert(ctx context.Context, user *domain.User) (string, error)

	// ListAll returns every user in insertion order. The order is stable
	// between calls absent intervening writes.
	ListAll(ctx context.Context) ([]*domain.User, error)

	// FindByFilters returns the users whose fields exactly match every
	// given filter, AND-combined. A filter that matches nothing yields an
	// empty slice, never an error. Keys must come from the filter
	// whitelist; callers gate on HasField first.
	FindByFilters(ctx context.Context, filters map[string]string) ([]*domain.User, error)

	// FindByEmail retrieves a single user for credential checks. Returns
	// domain.ErrUserNotFound when the email is unknown.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// HasField reports whether name is a recognized filter key.
	HasField(name string) bool
}

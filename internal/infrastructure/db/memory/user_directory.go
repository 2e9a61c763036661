// Package memory provides in-process adapters used when the service runs
// with STORE=memory and by the test suites.
package memory

import (
	"context"
	"sync"

	"github.com/rs/xid"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
)

// UserDirectory keeps users in an append-only slice (insertion order) with
// an email index owning uniqueness. The write lock spans the uniqueness
// check and the append, so concurrent inserts with the same email cannot
// both succeed.
type UserDirectory struct {
	mu      sync.RWMutex
	users   []*domain.User
	byEmail map[string]*domain.User
}

var _ ports.UserDirectory = (*UserDirectory)(nil)

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{byEmail: make(map[string]*domain.User)}
}

func (d *UserDirectory) Insert(_ context.Context, user *domain.User) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.byEmail[user.Email]; exists {
		return "", domain.ErrEmailInUse
	}

	stored := *user
	stored.ID = xid.New().String()
	d.users = append(d.users, &stored)
	d.byEmail[stored.Email] = &stored
	return stored.ID, nil
}

func (d *UserDirectory) ListAll(_ context.Context) ([]*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*domain.User, 0, len(d.users))
	for _, u := range d.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (d *UserDirectory) FindByFilters(_ context.Context, filters map[string]string) ([]*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*domain.User, 0)
	for _, u := range d.users {
		if matches(u, filters) {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (d *UserDirectory) HasField(name string) bool {
	return domain.FilterableField(name)
}

func matches(u *domain.User, filters map[string]string) bool {
	for field, want := range filters {
		var got string
		switch field {
		case "_id":
			got = u.ID
		case "nome":
			got = u.Nome
		case "email":
			got = u.Email
		case "password":
			got = u.PasswordHash
		case "administrador":
			got = u.AdminString()
		default:
			return false
		}
		if got != want {
			return false
		}
	}
	return true
}

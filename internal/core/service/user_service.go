package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/ports"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

// UserService implements registration and the listing query gateway on top
// of a UserDirectory.
type UserService struct {
	directory ports.UserDirectory
	log       zerolog.Logger
}

func NewUserService(directory ports.UserDirectory, log zerolog.Logger) *UserService {
	return &UserService{directory: directory, log: log}
}

// Register validates, hashes, and inserts. Either the whole registration
// succeeds or nothing is stored.
func (s *UserService) Register(ctx context.Context, payload validate.RegistrationPayload) (string, error) {
	user, ferr := validate.Registration(payload)
	if ferr != nil {
		return "", ferr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id, err := s.directory.Insert(ctx, &domain.User{
		Nome:          user.Nome,
		Email:         user.Email,
		PasswordHash:  string(hash),
		Administrador: user.Administrador,
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", id).Msg("user registered")
	return id, nil
}

// List rejects the request on the first unrecognized filter key before any
// directory data is touched. Keys are checked in sorted order so the
// reported key is deterministic.
func (s *UserService) List(ctx context.Context, filters map[string]string) ([]*domain.User, error) {
	if len(filters) == 0 {
		return s.directory.ListAll(ctx)
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !s.directory.HasField(k) {
			return nil, &domain.ParamError{Param: k}
		}
	}

	return s.directory.FindByFilters(ctx, filters)
}

package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/serverest/usuarios-api/internal/core/domain"
	"github.com/serverest/usuarios-api/internal/core/validate"
)

// stubDirectory is a minimal in-test directory. Not safe for concurrent use;
// concurrency is the memory adapter's concern, not the service's.
type stubDirectory struct {
	users  []*domain.User
	nextID int
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{}
}

func (d *stubDirectory) Insert(_ context.Context, user *domain.User) (string, error) {
	for _, u := range d.users {
		if u.Email == user.Email {
			return "", domain.ErrEmailInUse
		}
	}
	d.nextID++
	stored := *user
	stored.ID = "id-" + strconv.Itoa(d.nextID)
	d.users = append(d.users, &stored)
	return stored.ID, nil
}

func (d *stubDirectory) ListAll(_ context.Context) ([]*domain.User, error) {
	return append([]*domain.User(nil), d.users...), nil
}

func (d *stubDirectory) FindByFilters(_ context.Context, filters map[string]string) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, u := range d.users {
		ok := true
		for field, want := range filters {
			switch field {
			case "_id":
				ok = ok && u.ID == want
			case "nome":
				ok = ok && u.Nome == want
			case "email":
				ok = ok && u.Email == want
			case "password":
				ok = ok && u.PasswordHash == want
			case "administrador":
				ok = ok && u.AdminString() == want
			default:
				ok = false
			}
		}
		if ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range d.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (d *stubDirectory) HasField(name string) bool {
	return domain.FilterableField(name)
}

func str(s string) *string { return &s }

func registration(email string) validate.RegistrationPayload {
	return validate.RegistrationPayload{
		Nome:          str("Fulano da Silva"),
		Email:         str(email),
		Password:      str("teste"),
		Administrador: str("true"),
	}
}

func TestUserService_Register_Success(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	id, err := svc.Register(context.Background(), registration("fulano@qa.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected an id")
	}

	stored := dir.users[0]
	if stored.PasswordHash == "teste" {
		t.Fatalf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("teste")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !stored.Administrador {
		t.Fatalf("administrador flag lost")
	}
}

func TestUserService_Register_ValidationError(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	p := registration("fulano@qa.com")
	p.Nome = nil
	_, err := svc.Register(context.Background(), p)

	fe, ok := err.(*domain.FieldError)
	if !ok {
		t.Fatalf("expected *domain.FieldError, got %T (%v)", err, err)
	}
	if fe.Field != "nome" || fe.Message != "nome é obrigatório" {
		t.Fatalf("unexpected field error: %+v", fe)
	}
	if len(dir.users) != 0 {
		t.Fatalf("nothing may be stored on validation failure")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registration("fulano@qa.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registration("fulano@qa.com")); err != domain.ErrEmailInUse {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	if len(dir.users) != 1 {
		t.Fatalf("duplicate must not overwrite, have %d users", len(dir.users))
	}
}

func TestUserService_List_NoFilters(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	_, _ = svc.Register(context.Background(), registration("a@qa.com"))
	_, _ = svc.Register(context.Background(), registration("b@qa.com"))

	users, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserService_List_Filtered(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	id, _ := svc.Register(context.Background(), registration("a@qa.com"))
	_, _ = svc.Register(context.Background(), registration("b@qa.com"))

	users, err := svc.List(context.Background(), map[string]string{"_id": id})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != id {
		t.Fatalf("filter by id returned %+v", users)
	}

	users, err = svc.List(context.Background(), map[string]string{"_id": "invalido"})
	if err != nil {
		t.Fatalf("unmatched filter must succeed, got %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty result, got %+v", users)
	}
}

func TestUserService_List_UnknownParam(t *testing.T) {
	dir := newStubDirectory()
	svc := NewUserService(dir, zerolog.Nop())

	_, err := svc.List(context.Background(), map[string]string{"noexiste": "test"})
	pe, ok := err.(*domain.ParamError)
	if !ok {
		t.Fatalf("expected *domain.ParamError, got %T (%v)", err, err)
	}
	if pe.Param != "noexiste" || pe.Error() != "noexiste não é permitido" {
		t.Fatalf("unexpected param error: %+v", pe)
	}

	// Mixed known and unknown keys: the whole request fails, and the
	// reported key is deterministic (sorted order).
	_, err = svc.List(context.Background(), map[string]string{"nome": "Fulano", "abc": "1", "zzz": "2"})
	pe, ok = err.(*domain.ParamError)
	if !ok {
		t.Fatalf("expected *domain.ParamError, got %T", err)
	}
	if pe.Param != "abc" {
		t.Fatalf("expected first unknown key in sorted order, got %q", pe.Param)
	}
}

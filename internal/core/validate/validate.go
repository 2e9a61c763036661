// Package validate implements the field validation rules for registration
// and login payloads. Checks run in a fixed field order and short-circuit on
// the first violation, so a payload with several bad fields still reports
// exactly one error.
package validate

import (
	playground "github.com/go-playground/validator/v10"

	"github.com/serverest/usuarios-api/internal/core/domain"
)

// v backs the email format rule. Instantiated once; validator instances
// cache struct metadata and are safe for concurrent use.
var v = playground.New()

// RegistrationPayload is the raw POST /usuarios body. Pointer fields
// distinguish an absent key from a blank value.
type RegistrationPayload struct {
	Nome          *string `json:"nome"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Administrador *string `json:"administrador"`
}

// CredentialsPayload is the raw POST /login body.
type CredentialsPayload struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Registration checks a registration payload. Field order is nome, email,
// password, administrador; per field the order is presence, blankness,
// format. On success the payload is returned normalized, with administrador
// coerced to bool.
func Registration(p RegistrationPayload) (domain.NewUser, *domain.FieldError) {
	if err := text("nome", p.Nome); err != nil {
		return domain.NewUser{}, err
	}
	if err := email(p.Email); err != nil {
		return domain.NewUser{}, err
	}
	if err := text("password", p.Password); err != nil {
		return domain.NewUser{}, err
	}
	admin, err := administrador(p.Administrador)
	if err != nil {
		return domain.NewUser{}, err
	}

	return domain.NewUser{
		Nome:          *p.Nome,
		Email:         *p.Email,
		Password:      *p.Password,
		Administrador: admin,
	}, nil
}

// Credentials checks a login payload with the same per-field rules as
// registration.
func Credentials(p CredentialsPayload) *domain.FieldError {
	if err := email(p.Email); err != nil {
		return err
	}
	return text("password", p.Password)
}

// text enforces presence and blankness for fields without a format rule.
func text(field string, value *string) *domain.FieldError {
	if value == nil {
		return required(field)
	}
	if *value == "" {
		return blank(field)
	}
	return nil
}

func email(value *string) *domain.FieldError {
	if err := text("email", value); err != nil {
		return err
	}
	if v.Var(*value, "email") != nil {
		return &domain.FieldError{Field: "email", Message: "email deve ser um email válido"}
	}
	return nil
}

// administrador accepts exactly the strings "true" and "false". The blank
// case deliberately reuses the enum message instead of the usual blankness
// one; that duplication is part of the published contract.
func administrador(value *string) (bool, *domain.FieldError) {
	if value == nil {
		return false, required("administrador")
	}
	switch *value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &domain.FieldError{
		Field:   "administrador",
		Message: "administrador deve ser 'true' ou 'false'",
	}
}

func required(field string) *domain.FieldError {
	return &domain.FieldError{Field: field, Message: field + " é obrigatório"}
}

func blank(field string) *domain.FieldError {
	return &domain.FieldError{Field: field, Message: field + " não pode ficar em branco"}
}

package domain

import "errors"

var ErrEmailInUse = errors.New("Este email já está sendo usado")
var ErrInvalidCredentials = errors.New("Email e/ou senha inválidos")
var ErrUserNotFound = errors.New("usuário não encontrado")
var ErrSessionNotFound = errors.New("sessão não encontrada")

// FieldError is a single validation failure. At most one is produced per
// payload: validation short-circuits on the first offending field. Message
// is the full human-readable text, e.g. "nome é obrigatório", rendered at
// the boundary as {<field>: <message>}.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// ParamError marks a query parameter outside the filter whitelist. The whole
// request is rejected; no partial filtering happens.
type ParamError struct {
	Param string
}

func (e *ParamError) Error() string {
	return e.Param + " não é permitido"
}

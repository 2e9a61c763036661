package domain

import "strconv"

// User is the persisted identity record. The password is only ever held as a
// bcrypt hash and is excluded from every serialized form.
type User struct {
	ID            string `json:"_id" bson:"_id"`
	Nome          string `json:"nome" bson:"nome"`
	Email         string `json:"email" bson:"email"`
	PasswordHash  string `json:"-" bson:"password"`
	Administrador bool   `json:"administrador" bson:"administrador"`
}

// NewUser is a registration payload after validation: all fields present,
// non-blank, and administrador coerced to its boolean value. Password is
// still plaintext at this point; the registration service hashes it before
// the record reaches a directory.
type NewUser struct {
	Nome          string
	Email         string
	Password      string
	Administrador bool
}

// filterableFields is the whitelist of fields a listing may be narrowed by.
// Anything outside this set rejects the whole request.
var filterableFields = map[string]struct{}{
	"_id":           {},
	"nome":          {},
	"email":         {},
	"password":      {},
	"administrador": {},
}

// FilterableField reports whether name is a recognized filter key.
func FilterableField(name string) bool {
	_, ok := filterableFields[name]
	return ok
}

// AdminString returns the wire representation of the administrador flag,
// the literal strings "true" / "false".
func (u *User) AdminString() string {
	return strconv.FormatBool(u.Administrador)
}

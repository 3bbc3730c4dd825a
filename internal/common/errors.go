// Package common defines shared constants and sentinel errors used across
// the postboard server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Login errors. Unknown user and wrong password are deliberately the
	// same value so callers cannot tell them apart.
	ErrorInvalidLoginPassword = errors.New("invalid login/password")
	ErrorValidation           = errors.New("validation error")

	// Token lifecycle errors, in verification order: structure, signature,
	// expiry, revocation.
	ErrTokenMalformed = errors.New("token malformed")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenRevoked   = errors.New("token revoked")
)

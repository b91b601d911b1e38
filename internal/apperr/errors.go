package apperr

import (
	"errors"
	"fmt"
)

var (
	// common errors
	ErrNotFound = errors.New("not found")

	// session-specific errors
	ErrNotAuthenticated = errors.New("not authenticated")

	// identity-provider errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRegistered    = errors.New("email already registered")
)

// AuthError is an identity-provider rejection. Message carries the
// provider's wording so it can be shown to the user unmodified; when the
// provider gave none, Error falls back to a generic string.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "something went wrong"
}

func (e *AuthError) Unwrap() error { return e.Err }

// PersistenceError is a document-store read or write failure. Callers must
// leave in-memory state untouched when they receive one.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

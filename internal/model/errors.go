package model

import "errors"

// ValidationError marks malformed, missing or duplicate client input.
// Handlers answer 400 for anything of this class.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }

var (
	ErrEmailRequired    = Validation("email is required")
	ErrInvalidEmail     = Validation("invalid email format")
	ErrEmailExists      = Validation("email already registered")
	ErrPasswordTooShort = Validation("password too short")
	ErrNameRequired     = Validation("name is required")
	ErrNameExists       = Validation("name already registered")
	ErrStateRequired    = Validation("state is required")
	ErrTitleRequired    = Validation("title is required")
	ErrNothingToUpdate  = Validation("nothing to update")
)

var (
	// ErrNotFound covers both a nonexistent id and an id owned by a
	// different account. The two cases must stay indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is the single failure for a bad email or a
	// bad password. It never reveals which one was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProtected is a delete rejected because other records still
	// reference the target.
	ErrProtected = errors.New("record is still referenced")
)

package domain

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist in the store.
	// It is a sentinel, not a failure: callers translate it to a 404.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidCredentials covers both unknown username and wrong password
	// so login responses never reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrValidation      = errors.New("validation failed")
	ErrForbidden       = errors.New("access forbidden")
	ErrTooManyAttempts = errors.New("too many login attempts")
)

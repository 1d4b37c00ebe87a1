package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	// Deliberately a single error for both cases so login does not leak which
	// part failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("auth service: internal error")
)

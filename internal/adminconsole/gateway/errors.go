package gateway

import "errors"

var (
	// ErrUnauthorized is returned on 401: the token is dead and the console
	// must re-authenticate
	ErrUnauthorized = errors.New("gateway: unauthorized")

	// ErrBadRequest is returned on 400: the backend rejected the payload
	ErrBadRequest = errors.New("gateway: bad request")

	// ErrNotFound is returned on 404
	ErrNotFound = errors.New("gateway: not found")

	// ErrInternal is returned on client-side failures before the wire
	ErrInternal = errors.New("gateway: internal error")

	// ErrInvalidResponse is returned when the backend answers with an
	// unexpected status or an undecodable body
	ErrInvalidResponse = errors.New("gateway: invalid response")
)

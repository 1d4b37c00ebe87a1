package session

import "errors"

var (
	// ErrSessionNotFound is returned when a token has no live session
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore is returned on redis failures
	ErrStore = errors.New("session.store: store error")
)

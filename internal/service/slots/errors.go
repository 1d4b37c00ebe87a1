package slots

import "errors"

var (
	// ErrSlotNotFound is returned when a slot does not exist
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)

package update_slot

import "errors"

var (
	// ErrSlotNotFound is returned when the slot to update does not exist
	ErrSlotNotFound = errors.New("slot not found")

	// ErrMissingRequiredFields is returned when date or times are absent
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrEndBeforeStart is returned when the end time is not after the start time
	ErrEndBeforeStart = errors.New("end time must be after start time")

	// ErrReservedExceedsCapacity is returned when reserved_count > max_capacity
	ErrReservedExceedsCapacity = errors.New("reserved count exceeds max capacity")

	// ErrInvalidCapacity is returned when max_capacity is out of bounds
	ErrInvalidCapacity = errors.New("invalid max capacity")

	// ErrInvalidStatus is returned when the status is outside the closed set
	ErrInvalidStatus = errors.New("invalid slot status")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)

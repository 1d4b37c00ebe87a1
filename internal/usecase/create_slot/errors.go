package create_slot

import "errors"

var (
	// ErrMissingRequiredFields is returned when date, times or service are absent
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrEndBeforeStart is returned when the end time is not after the start time
	ErrEndBeforeStart = errors.New("end time must be after start time")

	// ErrReservedExceedsCapacity is returned when reserved_count > max_capacity
	ErrReservedExceedsCapacity = errors.New("reserved count exceeds max capacity")

	// ErrInvalidCapacity is returned when max_capacity is out of bounds
	ErrInvalidCapacity = errors.New("invalid max capacity")

	// ErrInvalidRecurrence is returned when recurrent_count is out of bounds
	ErrInvalidRecurrence = errors.New("invalid recurrent count")

	// ErrInvalidStatus is returned when the status is outside the closed set
	ErrInvalidStatus = errors.New("invalid slot status")

	// ErrDateInPast is returned when the booking date is behind the current day
	ErrDateInPast = errors.New("booking date cannot be in the past")

	// ErrServiceNotFound is returned when the owning service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)

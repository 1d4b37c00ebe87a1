package slotform

import "errors"

// Validation errors carry the exact message the form surfaces inline,
// so callers render err.Error() directly.
var (
	// ErrRequiredFields is returned when date, times or the service
	// selection are absent
	ErrRequiredFields = errors.New("Please fill in all required fields including service selection")

	// ErrEndNotAfterStart is returned when the end time does not follow
	// the start time
	ErrEndNotAfterStart = errors.New("End time must be after start time")

	// ErrReservedExceedsCapacity is returned when the reserved count
	// overflows the capacity
	ErrReservedExceedsCapacity = errors.New("Reserved count cannot exceed max capacity")
)

var (
	// ErrServiceNotInCatalogue is returned when an edit dialog cannot resolve
	// the slot's owning service against the fetched catalogue. The dialog
	// refuses to open rather than render a half-populated draft that can
	// never pass validation.
	ErrServiceNotInCatalogue = errors.New("slotform: slot's owning service not in catalogue")

	// ErrSubmitInProgress is returned when a submit fires while a previous
	// one is still in flight
	ErrSubmitInProgress = errors.New("slotform: submission already in progress")

	// ErrRecurrenceFixed is returned when an edit-mode draft tries to change
	// the recurrence. Recurrence is set once at creation.
	ErrRecurrenceFixed = errors.New("slotform: recurrence cannot be changed after creation")
)

package update_slot

import (
	"fmt"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// validateRequest mirrors the create-slot rules in the same fail-fast order,
// without the recurrence bound (recurrence is create-only).
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrMissingRequiredFields)
	}

	if req.BookingDate.IsZero() || req.StartTime.IsZero() || req.EndTime.IsZero() {
		return ErrMissingRequiredFields
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrMissingRequiredFields, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrMissingRequiredFields, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return ErrEndBeforeStart
	}

	if req.ReservedCount > req.MaxCapacity {
		return ErrReservedExceedsCapacity
	}

	if req.MaxCapacity < domain.MinMaxCapacity || req.MaxCapacity > domain.MaxMaxCapacity {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidCapacity, domain.MinMaxCapacity, domain.MaxMaxCapacity)
	}

	if req.ReservedCount < 0 {
		return fmt.Errorf("%w: reserved count cannot be negative", ErrReservedExceedsCapacity)
	}

	if !domain.ValidSlotStatus(req.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	return nil
}

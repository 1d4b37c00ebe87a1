package create_slot

import (
	"fmt"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// validateRequest checks the draft in the same order the admin console does:
// required fields first, then time ordering, then the capacity bound.
// Fail-fast: the first broken rule wins.
func validateRequest(req *Request) error {
	if req.BookingDate.IsZero() || req.StartTime.IsZero() || req.EndTime.IsZero() || req.ReservationID <= 0 {
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

	if req.RecurrentCount < domain.MinRecurrentCount || req.RecurrentCount > domain.MaxRecurrentCount {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidRecurrence, domain.MinRecurrentCount, domain.MaxRecurrentCount)
	}

	if !domain.ValidSlotStatus(req.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	return nil
}

// validateDate checks that the booking date is not behind the current day
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrDateInPast
	}
	return nil
}

// isDateInPast compares calendar days only, ignoring the time of day
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// instanceCount maps recurrent_count to the number of rows to materialise.
// 0 and 1 both mean just the slot itself; n > 1 adds copies on following days.
func instanceCount(recurrentCount int) int {
	if recurrentCount < 1 {
		return 1
	}
	return recurrentCount
}

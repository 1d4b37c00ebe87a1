// Package slotfilter derives the visible subset of a fetched slot collection.
// Pure: filtering never mutates the source collection, it builds a view.
package slotfilter

import (
	"strings"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
)

// Criteria is the active filter state. Nil fields mean "no constraint";
// set fields compose by conjunction.
type Criteria struct {
	Date          *string // calendar date "YYYY-MM-DD"
	ReservationID *int64
}

// Filter returns the slots matching the criteria, in source order.
// The result is always a fresh slice, so callers can hold or mutate it
// without corrupting the fetched collection.
func Filter(slots []models.TimeSlot, criteria Criteria) []models.TimeSlot {
	result := make([]models.TimeSlot, 0, len(slots))

	for _, slot := range slots {
		if criteria.ReservationID != nil && slot.ReservationID != *criteria.ReservationID {
			continue
		}
		if criteria.Date != nil && calendarDate(slot.BookingDate) != calendarDate(*criteria.Date) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// calendarDate normalises a date value to its calendar-day part, so a
// backend that serves "2026-03-15T00:00:00" still matches a plain
// "2026-03-15" selection
func calendarDate(value string) string {
	if idx := strings.IndexAny(value, "T "); idx >= 0 {
		return value[:idx]
	}
	return value
}

package domain

import (
	"time"

	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// SlotStatus represents the status of an appointment time slot
type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusFull        SlotStatus = "full"
	StatusUnavailable SlotStatus = "unavailable"
)

// ValidSlotStatus reports whether s belongs to the closed write set.
// Reads stay permissive: an unknown status coming back from the database is
// rendered as-is, but it is never accepted on create or update.
func ValidSlotStatus(s SlotStatus) bool {
	switch s {
	case StatusAvailable, StatusFull, StatusUnavailable:
		return true
	default:
		return false
	}
}

// TimeSlot represents a bookable appointment window for one service on one date
type TimeSlot struct {
	SlotID         int64
	ReservationID  int64 // owning service (services.service_id)
	BookingDate    time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	MaxCapacity    int
	ReservedCount  int
	RecurrentCount int // number of repeated future instances, create-only
	Status         SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.ReservedCount >= s.MaxCapacity
}

// RemainingCapacity returns how many reservations the slot can still take
func (s *TimeSlot) RemainingCapacity() int {
	remaining := s.MaxCapacity - s.ReservedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsBookable returns true if citizens can still reserve this slot
func (s *TimeSlot) IsBookable() bool {
	return s.Status == StatusAvailable && !s.IsFull()
}

// SlotFilter carries the optional criteria for listing a service's slots
type SlotFilter struct {
	ReservationID int64      // required
	Date          *time.Time // nil = all dates
}

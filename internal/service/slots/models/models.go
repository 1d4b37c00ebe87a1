package models

import (
	"errors"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is outside the closed set
	ErrInvalidStatus = errors.New("invalid slot status")
)

// TimeSlotResponse is the wire shape of a time slot. Field names follow the
// backend contract the SPA consumes: snake_case, "YYYY-MM-DD" dates,
// "HH:MM:SS" times.
type TimeSlotResponse struct {
	SlotID         int64  `json:"slot_id"`
	ReservationID  int64  `json:"reservation_id"`
	BookingDate    string `json:"booking_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	MaxCapacity    int    `json:"max_capacity"`
	ReservedCount  int    `json:"reserved_count"`
	RecurrentCount int    `json:"recurrent_count"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// FromDomainTimeSlot converts a domain slot to its wire shape
func FromDomainTimeSlot(s *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		SlotID:         s.SlotID,
		ReservationID:  s.ReservationID,
		BookingDate:    s.BookingDate.Format(domain.DateFormat),
		StartTime:      s.StartTime.WithSeconds(),
		EndTime:        s.EndTime.WithSeconds(),
		MaxCapacity:    s.MaxCapacity,
		ReservedCount:  s.ReservedCount,
		RecurrentCount: s.RecurrentCount,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTimeSlotList converts a list of domain slots
func FromDomainTimeSlotList(slots []*domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, len(slots))
	for i, s := range slots {
		result[i] = *FromDomainTimeSlot(s)
	}
	return result
}

// ToDomainSlotStatus parses a status string from the wire.
// Only the closed write set is accepted.
func ToDomainSlotStatus(s string) (domain.SlotStatus, error) {
	status := domain.SlotStatus(s)
	if !domain.ValidSlotStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

package create_slot

import (
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	slotmodels "github.com/SahanHeshan/GovPortal/internal/service/slots/models"
	createSlot "github.com/SahanHeshan/GovPortal/internal/usecase/create_slot"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	ReservationID  int64  `json:"reservation_id"`
	BookingDate    string `json:"booking_date"` // "2026-03-15"
	StartTime      string `json:"start_time"`   // "09:00:00"
	EndTime        string `json:"end_time"`     // "10:30:00"
	MaxCapacity    int    `json:"max_capacity"`
	ReservedCount  int    `json:"reserved_count"`
	RecurrentCount int    `json:"recurrent_count"`
	Status         string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateSlotRequest) ToUseCaseRequest() (*createSlot.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	status, err := slotmodels.ToDomainSlotStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return &createSlot.Request{
		ReservationID:  r.ReservationID,
		BookingDate:    bookingDate,
		StartTime:      startTime,
		EndTime:        endTime,
		MaxCapacity:    r.MaxCapacity,
		ReservedCount:  r.ReservedCount,
		RecurrentCount: r.RecurrentCount,
		Status:         status,
	}, nil
}

package update_slot

import (
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	slotmodels "github.com/SahanHeshan/GovPortal/internal/service/slots/models"
	updateSlot "github.com/SahanHeshan/GovPortal/internal/usecase/update_slot"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// UpdateSlotRequest HTTP request model. Deliberately narrower than the create
// payload: recurrence and the owning service are fixed at creation time.
type UpdateSlotRequest struct {
	BookingDate   string `json:"booking_date"` // "2026-03-15"
	StartTime     string `json:"start_time"`   // "09:00:00"
	EndTime       string `json:"end_time"`     // "10:30:00"
	MaxCapacity   int    `json:"max_capacity"`
	ReservedCount int    `json:"reserved_count"`
	Status        string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *UpdateSlotRequest) ToUseCaseRequest(slotID int64) (*updateSlot.Request, error) {
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

	return &updateSlot.Request{
		SlotID:        slotID,
		BookingDate:   bookingDate,
		StartTime:     startTime,
		EndTime:       endTime,
		MaxCapacity:   r.MaxCapacity,
		ReservedCount: r.ReservedCount,
		Status:        status,
	}, nil
}

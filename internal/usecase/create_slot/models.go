package create_slot

import (
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// Request is the create-slot input model
type Request struct {
	ReservationID  int64     // owning service id
	BookingDate    time.Time // first instance date
	StartTime      types.TimeString
	EndTime        types.TimeString
	MaxCapacity    int
	ReservedCount  int
	RecurrentCount int // total instances to materialise; 0 and 1 both mean a single slot
	Status         domain.SlotStatus
}

// Response is the first created slot instance
type Response struct {
	Slot         *domain.TimeSlot
	CreatedCount int // how many instances the recurrence expanded into
}

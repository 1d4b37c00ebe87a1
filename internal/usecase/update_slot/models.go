package update_slot

import (
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// Request is the update-slot input model. The field set deliberately excludes
// recurrent_count and reservation_id: the update endpoint is slot-identity
// scoped and accepts neither recurrence changes nor re-parenting.
type Request struct {
	SlotID        int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	MaxCapacity   int
	ReservedCount int
	Status        domain.SlotStatus
}

// Response is the updated slot
type Response struct {
	Slot *domain.TimeSlot
}

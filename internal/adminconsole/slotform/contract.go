package slotform

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
)

// Gateway is the slice of the backend client the form needs to submit
type Gateway interface {
	CreateSlot(ctx context.Context, payload models.CreateSlotPayload) (*models.TimeSlot, error)
	UpdateSlot(ctx context.Context, slotID int64, payload models.UpdateSlotPayload) (*models.TimeSlot, error)
}

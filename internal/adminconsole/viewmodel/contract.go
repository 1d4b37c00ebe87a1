package viewmodel

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
)

// Gateway is the slice of the backend client the list screen needs
type Gateway interface {
	ListSlots(ctx context.Context, reservationID int64) ([]models.TimeSlot, error)
	ListSlotsByDate(ctx context.Context, reservationID int64, date string) ([]models.TimeSlot, error)
	DeleteSlot(ctx context.Context, slotID int64) error
}

// Logger is the logging interface used by the view-model
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package slots

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// SlotRepository is the slot persistence interface the service needs
type SlotRepository interface {
	GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error)
	ListWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error)
	Delete(ctx context.Context, slotID int64) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

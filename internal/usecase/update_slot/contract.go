package update_slot

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// SlotRepository is the slot persistence interface the use case needs
type SlotRepository interface {
	GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error)
	Update(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error)
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_slot

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

type SlotsService interface {
	GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

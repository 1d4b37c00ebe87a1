package get_available_slots

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

type SlotsService interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_slots_by_date

import (
	"context"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

type SlotsService interface {
	ListByReservationAndDate(ctx context.Context, reservationID int64, date time.Time) ([]*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

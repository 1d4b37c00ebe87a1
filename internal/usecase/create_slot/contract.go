package create_slot

import (
	"context"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// SlotRepository is the slot persistence interface the use case needs
type SlotRepository interface {
	Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error)
}

// ServiceRepository resolves the owning service of a new slot
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// TransactionManager runs the recurrence expansion atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package govservices

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// ServiceRepository is the service-catalogue persistence interface
type ServiceRepository interface {
	ListByGovNode(ctx context.Context, govNodeID int64) ([]*domain.Service, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

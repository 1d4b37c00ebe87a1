package get_services

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

type ServicesCatalogue interface {
	ListByGovNode(ctx context.Context, govNodeID int64) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

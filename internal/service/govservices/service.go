package govservices

import (
	"context"
	"errors"
	"fmt"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

var (
	// ErrInvalidInput is returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)

// Service exposes the read-only service catalogue of a government office
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates the gov-services catalogue service
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListByGovNode returns the services an office offers
func (s *Service) ListByGovNode(ctx context.Context, govNodeID int64) ([]*domain.Service, error) {
	s.logger.Info("ListByGovNode: fetching services for gov_node=%d", govNodeID)

	if govNodeID <= 0 {
		return nil, fmt.Errorf("%w: govNodeID must be positive", ErrInvalidInput)
	}

	services, err := s.serviceRepo.ListByGovNode(ctx, govNodeID)
	if err != nil {
		s.logger.Error("ListByGovNode: repository error for gov_node=%d: %v", govNodeID, err)
		return nil, fmt.Errorf("%w: ListByGovNode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByGovNode: fetched %d service(s) for gov_node=%d", len(services), govNodeID)
	return services, nil
}

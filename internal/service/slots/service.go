package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	slotRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/slot"
)

// Service owns slot reads and deletion
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService creates the slots service
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetByID fetches one slot
func (s *Service) GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	s.logger.Info("GetByID: fetching slot id=%d", slotID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return slot, nil
}

// ListByReservation returns all slots owned by one service
func (s *Service) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.TimeSlot, error) {
	s.logger.Info("ListByReservation: fetching slots for reservation=%d", reservationID)

	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	result, err := s.slotRepo.ListWithFilter(ctx, domain.SlotFilter{ReservationID: reservationID})
	if err != nil {
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByReservation: fetched %d slot(s) for reservation=%d", len(result), reservationID)
	return result, nil
}

// ListByReservationAndDate returns one service's slots on one calendar date
func (s *Service) ListByReservationAndDate(ctx context.Context, reservationID int64, date time.Time) ([]*domain.TimeSlot, error) {
	s.logger.Info("ListByReservationAndDate: fetching slots for reservation=%d, date=%s",
		reservationID, date.Format(domain.DateFormat))

	if reservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	result, err := s.slotRepo.ListWithFilter(ctx, domain.SlotFilter{ReservationID: reservationID, Date: &date})
	if err != nil {
		s.logger.Error("ListByReservationAndDate: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservationAndDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByReservationAndDate: fetched %d slot(s) for reservation=%d on %s",
		len(result), reservationID, date.Format(domain.DateFormat))
	return result, nil
}

// Delete removes one slot
func (s *Service) Delete(ctx context.Context, slotID int64) error {
	s.logger.Info("Delete: deleting slot id=%d", slotID)

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%d deleted", slotID)
	return nil
}

package create_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	serviceRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/govservice"
)

// UseCase creates a time slot and materialises its recurrence.
// A recurrence of n produces the slot plus copies on the n-1 following days,
// all inside one serializable transaction so the expansion is all-or-nothing.
type UseCase struct {
	slotRepo     SlotRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the create-slot use case
func NewUseCase(
	slotRepo SlotRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the create-slot use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: service=%d, date=%s, time=%s-%s, capacity=%d, recurrence=%d",
		req.ReservationID, req.BookingDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.MaxCapacity, req.RecurrentCount)

	// 1. Validate the draft
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. The first instance must not land behind the current day
	now := uc.timeProvider.Now()
	if err := validateDate(req.BookingDate, now); err != nil {
		uc.logger.Warn("CreateSlot: date in past: date=%s, now=%s",
			req.BookingDate.Format(domain.DateFormat), now.Format(domain.DateFormat))
		return nil, err
	}

	// 3. The owning service must exist, the slot never invents one
	if _, err := uc.serviceRepo.GetByID(ctx, req.ReservationID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateSlot: service id=%d not found", req.ReservationID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateSlot: failed to get service id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Materialise the instances atomically
	count := instanceCount(req.RecurrentCount)
	var first *domain.TimeSlot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for i := 0; i < count; i++ {
			instance := &domain.TimeSlot{
				ReservationID:  req.ReservationID,
				BookingDate:    req.BookingDate.AddDate(0, 0, i),
				StartTime:      req.StartTime,
				EndTime:        req.EndTime,
				MaxCapacity:    req.MaxCapacity,
				ReservedCount:  req.ReservedCount,
				RecurrentCount: req.RecurrentCount,
				Status:         req.Status,
			}

			created, err := uc.slotRepo.Create(txCtx, instance)
			if err != nil {
				return err
			}

			if first == nil {
				first = created
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateSlot: failed to create slots for service=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSlot: created %d slot(s), first slot_id=%d, service=%d",
		count, first.SlotID, req.ReservationID)

	return &Response{Slot: first, CreatedCount: count}, nil
}

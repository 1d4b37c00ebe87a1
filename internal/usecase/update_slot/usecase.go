package update_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	slotRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/slot"
)

// UseCase updates the mutable fields of one time slot
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase creates the update-slot use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute runs the update-slot use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSlot: slot=%d, date=%s, time=%s-%s, capacity=%d",
		req.SlotID, req.BookingDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.MaxCapacity)

	// 1. Validate the draft (same rules as create, minus recurrence)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. The slot must already exist; updates never create
	existing, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("UpdateSlot: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("UpdateSlot: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Apply the update field set onto the stored slot
	existing.BookingDate = req.BookingDate
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.MaxCapacity = req.MaxCapacity
	existing.ReservedCount = req.ReservedCount
	existing.Status = req.Status

	updated, err := uc.slotRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("UpdateSlot: failed to update slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateSlot: slot id=%d updated", updated.SlotID)

	return &Response{Slot: updated}, nil
}

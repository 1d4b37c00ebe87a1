package create_slot

import (
	"errors"
	"net/http"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	slotmodels "github.com/SahanHeshan/GovPortal/internal/service/slots/models"
	createSlot "github.com/SahanHeshan/GovPortal/internal/usecase/create_slot"
)

const (
	msgInvalidBody       = "invalid request body"
	msgMissingFields     = "missing required fields"
	msgEndBeforeStart    = "end time must be after start time"
	msgReservedOverflow  = "reserved count cannot exceed max capacity"
	msgDateInPast        = "booking date cannot be in the past"
	msgInvalidCapacity   = "invalid max capacity"
	msgInvalidRecurrence = "invalid recurrent count"
	msgInvalidStatus     = "invalid slot status"
	msgServiceNotFound   = "service not found"
)

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/create_slot
// A recurrent_count above one materialises the slot plus copies on the
// following days; the response carries the first created instance.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/create_slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/create_slot - Invalid field format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSlot.ErrMissingRequiredFields):
			h.logger.Warn("POST /appointments/create_slot - Missing required fields: reservation_id=%d", req.ReservationID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createSlot.ErrEndBeforeStart):
			h.logger.Warn("POST /appointments/create_slot - End before start: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, createSlot.ErrReservedExceedsCapacity):
			h.logger.Warn("POST /appointments/create_slot - Reserved exceeds capacity: reserved=%d, capacity=%d",
				req.ReservedCount, req.MaxCapacity)
			handlers.RespondBadRequest(w, msgReservedOverflow)

		case errors.Is(err, createSlot.ErrDateInPast):
			h.logger.Warn("POST /appointments/create_slot - Booking date in past: %s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createSlot.ErrInvalidCapacity):
			h.logger.Warn("POST /appointments/create_slot - Invalid capacity: %d", req.MaxCapacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, createSlot.ErrInvalidRecurrence):
			h.logger.Warn("POST /appointments/create_slot - Invalid recurrence: %d", req.RecurrentCount)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, createSlot.ErrInvalidStatus):
			h.logger.Warn("POST /appointments/create_slot - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createSlot.ErrServiceNotFound):
			h.logger.Warn("POST /appointments/create_slot - Service not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointments/create_slot - Failed to create slot: reservation_id=%d, error=%v",
				req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/create_slot - Slot created: slot_id=%d, instances=%d",
		result.Slot.SlotID, result.CreatedCount)
	handlers.RespondJSON(w, http.StatusCreated, slotmodels.FromDomainTimeSlot(result.Slot))
}

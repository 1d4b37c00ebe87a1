package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	slotmodels "github.com/SahanHeshan/GovPortal/internal/service/slots/models"
	updateSlot "github.com/SahanHeshan/GovPortal/internal/usecase/update_slot"
)

const (
	msgInvalidSlotID    = "invalid slot ID"
	msgInvalidBody      = "invalid request body"
	msgSlotNotFound     = "slot not found"
	msgMissingFields    = "missing required fields"
	msgEndBeforeStart   = "end time must be after start time"
	msgReservedOverflow = "reserved count cannot exceed max capacity"
	msgInvalidCapacity  = "invalid max capacity"
	msgInvalidStatus    = "invalid slot status"
)

type Handler struct {
	useCase UpdateSlotUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/slot/{slot_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotIDStr := vars["slot_id"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/slot/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/slot/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(slotID)
	if err != nil {
		h.logger.Warn("PUT /appointments/slot/{id} - Invalid field format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSlot.ErrSlotNotFound):
			h.logger.Warn("PUT /appointments/slot/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, updateSlot.ErrMissingRequiredFields):
			h.logger.Warn("PUT /appointments/slot/{id} - Missing required fields: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, updateSlot.ErrEndBeforeStart):
			h.logger.Warn("PUT /appointments/slot/{id} - End before start: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, updateSlot.ErrReservedExceedsCapacity):
			h.logger.Warn("PUT /appointments/slot/{id} - Reserved exceeds capacity: reserved=%d, capacity=%d",
				req.ReservedCount, req.MaxCapacity)
			handlers.RespondBadRequest(w, msgReservedOverflow)

		case errors.Is(err, updateSlot.ErrInvalidCapacity):
			h.logger.Warn("PUT /appointments/slot/{id} - Invalid capacity: %d", req.MaxCapacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, updateSlot.ErrInvalidStatus):
			h.logger.Warn("PUT /appointments/slot/{id} - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /appointments/slot/{id} - Failed to update slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/slot/{id} - Slot updated: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, slotmodels.FromDomainTimeSlot(result.Slot))
}

package get_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/service/slots"
	slotmodels "github.com/SahanHeshan/GovPortal/internal/service/slots/models"
)

const (
	msgInvalidSlotID = "invalid slot ID"
	msgSlotNotFound  = "slot not found"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/slot/{slot_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotIDStr := vars["slot_id"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/slot/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	slot, err := h.service.GetByID(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("GET /appointments/slot/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /appointments/slot/{id} - Failed to get slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/slot/{id} - Slot retrieved: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, slotmodels.FromDomainTimeSlot(slot))
}

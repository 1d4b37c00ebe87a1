package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/service/slots"
)

const (
	msgInvalidSlotID = "invalid slot ID"
	msgSlotNotFound  = "slot not found"
	msgSlotDeleted   = "slot deleted successfully"
)

// DeleteSlotResponse HTTP response model
type DeleteSlotResponse struct {
	Message string `json:"message"`
}

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

// Handle DELETE /api/v1/appointments/slot/delete/{slot_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotIDStr := vars["slot_id"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/slot/delete/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("DELETE /appointments/slot/delete/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("DELETE /appointments/slot/delete/{id} - Failed to delete slot: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/slot/delete/{id} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, DeleteSlotResponse{Message: msgSlotDeleted})
}

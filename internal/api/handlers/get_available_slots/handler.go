package get_available_slots

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
	msgInvalidReservationID = "invalid reservation ID"
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

// Handle GET /api/v1/appointments/available_slots/{reservation_id}
// Responds with a bare JSON array of slots ordered by date and start time.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationIDStr := vars["reservation_id"]
	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/available_slots/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.ListByReservation(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /appointments/available_slots/{id} - Invalid input: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("GET /appointments/available_slots/{id} - Failed to list slots: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/available_slots/{id} - Slots retrieved: reservation_id=%d, count=%d",
		reservationID, len(result))
	handlers.RespondJSON(w, http.StatusOK, slotmodels.FromDomainTimeSlotList(result))
}

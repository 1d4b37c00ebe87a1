package get_slots_by_date

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/internal/service/slots"
	slotmodels "github.com/SahanHeshan/GovPortal/internal/service/slots/models"
)

const (
	msgInvalidReservationID = "invalid reservation ID"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
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

// Handle GET /api/v1/appointments/available_slots/{reservation_id}/{date}
// Responds with a bare JSON array of the service's slots on one calendar date.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationIDStr := vars["reservation_id"]
	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/available_slots/{id}/{date} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	dateStr := vars["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/available_slots/{id}/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByReservationAndDate(r.Context(), reservationID, date)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /appointments/available_slots/{id}/{date} - Invalid input: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("GET /appointments/available_slots/{id}/{date} - Failed to list slots: reservation_id=%d, date=%s, error=%v",
				reservationID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/available_slots/{id}/{date} - Slots retrieved: reservation_id=%d, date=%s, count=%d",
		reservationID, dateStr, len(result))
	handlers.RespondJSON(w, http.StatusOK, slotmodels.FromDomainTimeSlotList(result))
}

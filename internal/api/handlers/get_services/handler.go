package get_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/service/govservices"
	servicemodels "github.com/SahanHeshan/GovPortal/internal/service/govservices/models"
)

const (
	msgInvalidGovNodeID = "invalid office ID"
)

type Handler struct {
	catalogue ServicesCatalogue
	logger    Logger
}

func NewHandler(catalogue ServicesCatalogue, logger Logger) *Handler {
	return &Handler{
		catalogue: catalogue,
		logger:    logger,
	}
}

// Handle GET /api/v1/gov/services/{gov_node_id}
// Responds with a bare JSON array of the office's services.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	govNodeIDStr := vars["gov_node_id"]
	govNodeID, err := strconv.ParseInt(govNodeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /gov/services/{id} - Invalid office ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGovNodeID)
		return
	}

	result, err := h.catalogue.ListByGovNode(r.Context(), govNodeID)
	if err != nil {
		switch {
		case errors.Is(err, govservices.ErrInvalidInput):
			h.logger.Warn("GET /gov/services/{id} - Invalid input: gov_node_id=%d", govNodeID)
			handlers.RespondBadRequest(w, msgInvalidGovNodeID)

		default:
			h.logger.Error("GET /gov/services/{id} - Failed to list services: gov_node_id=%d, error=%v",
				govNodeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /gov/services/{id} - Services retrieved: gov_node_id=%d, count=%d", govNodeID, len(result))
	handlers.RespondJSON(w, http.StatusOK, servicemodels.FromDomainServiceList(result))
}

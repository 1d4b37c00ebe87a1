package logout

import (
	"net/http"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/api/middleware"
)

const (
	msgMissingToken = "missing bearer token"
	msgLoggedOut    = "logged out"
)

// LogoutResponse HTTP response model
type LogoutResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/gov/logout
// Kills the server-side session of the request's own bearer token.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerTokenFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /gov/logout - No bearer token in context")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /gov/logout - Logout failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /gov/logout - Session closed")
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Message: msgLoggedOut})
}

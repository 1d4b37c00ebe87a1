package login

import (
	"errors"
	"net/http"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/service/auth"
)

const (
	msgInvalidForm        = "invalid form data"
	msgMissingCredentials = "username and password are required"
	msgInvalidGrantType   = "unsupported grant type"
	msgInvalidCredentials = "invalid username or password"
)

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

// Handle POST /api/v1/gov/login
// Accepts an OAuth2-style password grant as form data: grant_type, username,
// password. Responds with a bearer token plus the officer profile.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /gov/login - Invalid form data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	grantType := r.PostFormValue("grant_type")
	if grantType != "" && grantType != "password" {
		h.logger.Warn("POST /gov/login - Unsupported grant type: %s", grantType)
		handlers.RespondBadRequest(w, msgInvalidGrantType)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.logger.Warn("POST /gov/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	officer, token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /gov/login - Invalid credentials: username=%s", username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /gov/login - Login failed: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /gov/login - Officer logged in: id=%d, username=%s", officer.ID, username)
	handlers.RespondJSON(w, http.StatusOK, FromDomainOfficer(officer, token))
}

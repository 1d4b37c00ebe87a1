package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
	"github.com/SahanHeshan/GovPortal/internal/infra/session"
	"github.com/SahanHeshan/GovPortal/internal/service/auth"
)

const (
	msgMissingToken   = "missing or malformed authorization header"
	msgInvalidToken   = "invalid or expired token"
	msgSessionExpired = "session expired"
)

type officerIDKey struct{}
type bearerTokenKey struct{}

// SessionToucher extends a token's idle TTL and resolves its owner
type SessionToucher interface {
	Touch(ctx context.Context, token string) (int64, error)
}

// AuthLogger is the logging interface used by the auth middleware
type AuthLogger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth verifies the bearer JWT and touches its server-side session.
// The touch pushes the idle TTL forward, so activity through any endpoint
// keeps the session alive. Requests with a valid signature but a dead
// session are rejected: logout and idle expiry win over token lifetime.
func Auth(jwtSecret []byte, sessions SessionToucher, log AuthLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Warn("Auth middleware - Missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims := &auth.Claims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return jwtSecret, nil
			})
			if err != nil || !parsed.Valid {
				log.Warn("Auth middleware - Invalid token: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			officerID, err := sessions.Touch(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					log.Warn("Auth middleware - Dead session: %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgSessionExpired)
					return
				}
				log.Error("Auth middleware - Session store error: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), officerIDKey{}, officerID)
			ctx = context.WithValue(ctx, bearerTokenKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OfficerIDFromContext returns the authenticated officer id, if any
func OfficerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(officerIDKey{}).(int64)
	return id, ok
}

// BearerTokenFromContext returns the request's bearer token, if any
func BearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey{}).(string)
	return token, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}

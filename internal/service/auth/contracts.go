package auth

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// OfficerRepository resolves officer accounts for login
type OfficerRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Officer, error)
}

// SessionStore tracks live bearer tokens
type SessionStore interface {
	Create(ctx context.Context, token string, officerID int64) error
	Delete(ctx context.Context, token string) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

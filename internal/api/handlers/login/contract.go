package login

import (
	"context"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Officer, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	officerRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/officer"
)

// Claims is the JWT payload minted at login
type Claims struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	CategoryID int64  `json:"category_id"`
	jwt.RegisteredClaims
}

// Service implements officer login and logout
type Service struct {
	officerRepo OfficerRepository
	sessions    SessionStore
	jwtSecret   []byte
	tokenTTL    time.Duration
	logger      Logger
}

// NewService creates the auth service
func NewService(
	officerRepo OfficerRepository,
	sessions SessionStore,
	jwtSecret []byte,
	tokenTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		officerRepo: officerRepo,
		sessions:    sessions,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login verifies the credentials, mints a bearer token and opens a session.
// Returns the officer profile alongside the token: the SPA renders the office
// identity straight from the login response.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Officer, string, error) {
	s.logger.Info("Login: attempt for username=%s", username)

	o, err := s.officerRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, officerRepo.ErrOfficerNotFound) {
			s.logger.Warn("Login: unknown username=%s", username)
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", username, err)
		return nil, "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.mintToken(o)
	if err != nil {
		s.logger.Error("Login: failed to mint token for username=%s: %v", username, err)
		return nil, "", fmt.Errorf("%w: Login - failed to mint token: %v", ErrInternal, err)
	}

	if err := s.sessions.Create(ctx, token, o.ID); err != nil {
		s.logger.Error("Login: failed to create session for username=%s: %v", username, err)
		return nil, "", fmt.Errorf("%w: Login - failed to create session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: officer id=%d logged in", o.ID)
	return o, token, nil
}

// Logout deletes the token's session. Idempotent: logging out an already
// dead token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Warn("Logout: failed to delete session: %v", err)
	}
	return nil
}

func (s *Service) mintToken(o *domain.Officer) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:   o.Username,
		Role:       o.Role,
		CategoryID: o.CategoryID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", o.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

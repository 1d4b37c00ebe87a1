package login

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/internal/service/auth"
)

type fakeAuthService struct {
	username string
	password string
	officer  *domain.Officer
	token    string
	err      error
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*domain.Officer, string, error) {
	f.username = username
	f.password = password
	if f.err != nil {
		return nil, "", f.err
	}
	return f.officer, f.token, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postForm(t *testing.T, svc *fakeAuthService, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gov/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeAuthService{
		officer: &domain.Officer{
			ID:       7,
			Username: "colombo_officer",
			Role:     "officer",
			Email:    "office@example.gov",
			Location: "Colombo",
			NameEN:   "Divisional Secretariat Colombo",
		},
		token: "signed.jwt.token",
	}

	rec := postForm(t, svc, url.Values{
		"grant_type": {"password"},
		"username":   {"colombo_officer"},
		"password":   {"s3cret"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "colombo_officer", svc.username)
	assert.Equal(t, "s3cret", svc.password)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "Divisional Secretariat Colombo", resp.NameEN)
}

func TestHandle_GrantTypeOptional(t *testing.T) {
	svc := &fakeAuthService{officer: &domain.Officer{ID: 1}, token: "t"}

	rec := postForm(t, svc, url.Values{
		"username": {"u"},
		"password": {"p"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_UnsupportedGrantType(t *testing.T) {
	svc := &fakeAuthService{}

	rec := postForm(t, svc, url.Values{
		"grant_type": {"client_credentials"},
		"username":   {"u"},
		"password":   {"p"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.username)
}

func TestHandle_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"no username", url.Values{"password": {"p"}}},
		{"no password", url.Values{"username": {"u"}}},
		{"empty form", url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, &fakeAuthService{}, tt.form)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, msgMissingCredentials, resp["message"])
		})
	}
}

func TestHandle_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{err: auth.ErrInvalidCredentials}

	rec := postForm(t, svc, url.Values{
		"username": {"u"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidCredentials, resp["message"])
}

func TestHandle_ServiceFailure(t *testing.T) {
	svc := &fakeAuthService{err: assert.AnError}

	rec := postForm(t, svc, url.Values{
		"username": {"u"},
		"password": {"p"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, staticTokens{token: "tkn"}, nopLogger{})
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/gov/login", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostFormValue("grant_type"))
		assert.Equal(t, "officer1", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "minted-token",
			"token_type":   "bearer",
			"user_id":      7,
			"username":     "officer1",
			"name_en":      "Colombo Divisional Secretariat",
		})
	})

	result, err := client.Login(context.Background(), "officer1", "secret")
	require.NoError(t, err)

	assert.Equal(t, "minted-token", result.AccessToken)
	assert.Equal(t, int64(7), result.Officer.UserID)
	assert.Equal(t, "Colombo Divisional Secretariat", result.Officer.NameEN)
}

func TestLogin_BadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "officer1", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListSlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/appointments/available_slots/42", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]models.TimeSlot{
			{SlotID: 1, ReservationID: 42},
			{SlotID: 2, ReservationID: 42},
		})
	})

	slots, err := client.ListSlots(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, int64(1), slots[0].SlotID)
}

func TestListSlotsByDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appointments/available_slots/42/2026-03-15", r.URL.Path)
		json.NewEncoder(w).Encode([]models.TimeSlot{{SlotID: 5}})
	})

	slots, err := client.ListSlotsByDate(context.Background(), 42, "2026-03-15")
	require.NoError(t, err)
	require.Len(t, slots, 1)
}

func TestListServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/gov/services/3", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Service{{ServiceID: 10, ServiceNameEN: "Birth Certificate"}})
	})

	services, err := client.ListServices(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Birth Certificate", services[0].ServiceNameEN)
}

func TestCreateSlot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appointments/create_slot", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "reservation_id")
		assert.Contains(t, payload, "recurrent_count")
		assert.Equal(t, "09:00:00", payload["start_time"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.TimeSlot{SlotID: 100})
	})

	created, err := client.CreateSlot(context.Background(), models.CreateSlotPayload{
		ReservationID:  1,
		BookingDate:    "2026-03-15",
		StartTime:      "09:00:00",
		EndTime:        "10:30:00",
		MaxCapacity:    10,
		RecurrentCount: 1,
		Status:         "available",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.SlotID)
}

func TestCreateSlot_BadRequestCarriesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    400,
			"message": "end time must be after start time",
		})
	})

	_, err := client.CreateSlot(context.Background(), models.CreateSlotPayload{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "end time must be after start time")
}

func TestUpdateSlot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/appointments/slot/7", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotContains(t, payload, "reservation_id")
		assert.NotContains(t, payload, "recurrent_count")

		json.NewEncoder(w).Encode(models.TimeSlot{SlotID: 7})
	})

	updated, err := client.UpdateSlot(context.Background(), 7, models.UpdateSlotPayload{
		BookingDate: "2026-03-15",
		StartTime:   "09:00:00",
		EndTime:     "10:30:00",
		MaxCapacity: 10,
		Status:      "available",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.SlotID)
}

func TestGetSlot_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetSlot(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSlot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/appointments/slot/delete/7", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "slot deleted successfully"})
	})

	assert.NoError(t, client.DeleteSlot(context.Background(), 7))
}

func TestDeadSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListSlots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_IdempotentOnDeadToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/gov/logout", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.NoError(t, client.Logout(context.Background()))
}

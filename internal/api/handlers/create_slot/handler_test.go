package create_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	createSlot "github.com/SahanHeshan/GovPortal/internal/usecase/create_slot"
)

type fakeUseCase struct {
	req  *createSlot.Request
	resp *createSlot.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createSlot.Request) (*createSlot.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"reservation_id":  1,
		"booking_date":    "2026-03-15",
		"start_time":      "09:00:00",
		"end_time":        "10:30:00",
		"max_capacity":    10,
		"reserved_count":  0,
		"recurrent_count": 1,
		"status":          "available",
	}
}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/create_slot", bytes.NewReader(encoded))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	created := &domain.TimeSlot{
		SlotID:         100,
		ReservationID:  1,
		BookingDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "10:30",
		MaxCapacity:    10,
		RecurrentCount: 1,
		Status:         domain.StatusAvailable,
	}
	uc := &fakeUseCase{resp: &createSlot.Response{Slot: created, CreatedCount: 1}}

	rec := doRequest(t, uc, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(100), resp["slot_id"])
	assert.Equal(t, "2026-03-15", resp["booking_date"])
	assert.Equal(t, "09:00:00", resp["start_time"])

	// The handler passed the parsed request through
	require.NotNil(t, uc.req)
	assert.Equal(t, int64(1), uc.req.ReservationID)
	assert.Equal(t, "09:00", uc.req.StartTime.String())
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/create_slot", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := validBody()
	body["booking_date"] = "15-03-2026"

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownStatus(t *testing.T) {
	body := validBody()
	body["status"] = "other"

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", createSlot.ErrMissingRequiredFields, http.StatusBadRequest, msgMissingFields},
		{"end before start", createSlot.ErrEndBeforeStart, http.StatusBadRequest, msgEndBeforeStart},
		{"reserved overflow", createSlot.ErrReservedExceedsCapacity, http.StatusBadRequest, msgReservedOverflow},
		{"date in past", createSlot.ErrDateInPast, http.StatusBadRequest, msgDateInPast},
		{"service not found", createSlot.ErrServiceNotFound, http.StatusNotFound, msgServiceNotFound},
		{"internal", createSlot.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp["message"])
		})
	}
}

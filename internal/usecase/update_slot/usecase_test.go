package update_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	slotRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/slot"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

type fakeSlotRepo struct {
	stored    *domain.TimeSlot
	getErr    error
	updateErr error
	updated   *domain.TimeSlot
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	out := *r.stored
	return &out, nil
}

func (r *fakeSlotRepo) Update(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.updated = s
	return s, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func storedSlot(t *testing.T) *domain.TimeSlot {
	t.Helper()
	return &domain.TimeSlot{
		SlotID:         7,
		ReservationID:  1,
		BookingDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      mustTime(t, "09:00"),
		EndTime:        mustTime(t, "10:30"),
		MaxCapacity:    10,
		ReservedCount:  2,
		RecurrentCount: 3,
		Status:         domain.StatusAvailable,
	}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		SlotID:        7,
		BookingDate:   time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     mustTime(t, "11:00"),
		EndTime:       mustTime(t, "12:00"),
		MaxCapacity:   15,
		ReservedCount: 5,
		Status:        domain.StatusFull,
	}
}

func TestExecute_UpdatesMutableFields(t *testing.T) {
	repo := &fakeSlotRepo{stored: storedSlot(t)}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-20", resp.Slot.BookingDate.Format(domain.DateFormat))
	assert.Equal(t, "11:00", resp.Slot.StartTime.String())
	assert.Equal(t, 15, resp.Slot.MaxCapacity)
	assert.Equal(t, 5, resp.Slot.ReservedCount)
	assert.Equal(t, domain.StatusFull, resp.Slot.Status)
}

// The update field set never touches recurrence or the owning service.
func TestExecute_PreservesRecurrenceAndOwner(t *testing.T) {
	repo := &fakeSlotRepo{stored: storedSlot(t)}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.Equal(t, 3, repo.updated.RecurrentCount)
	assert.Equal(t, int64(1), repo.updated.ReservationID)
}

func TestExecute_SlotNotFound(t *testing.T) {
	repo := &fakeSlotRepo{getErr: slotRepo.ErrSlotNotFound}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_Validation(t *testing.T) {
	repo := &fakeSlotRepo{stored: storedSlot(t)}
	uc := NewUseCase(repo, nopLogger{})

	t.Run("missing fields", func(t *testing.T) {
		req := validRequest(t)
		req.BookingDate = time.Time{}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingRequiredFields)
	})

	t.Run("end before start", func(t *testing.T) {
		req := validRequest(t)
		req.StartTime = mustTime(t, "12:00")
		req.EndTime = mustTime(t, "11:00")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEndBeforeStart)
	})

	t.Run("reserved over capacity", func(t *testing.T) {
		req := validRequest(t)
		req.MaxCapacity = 10
		req.ReservedCount = 11

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrReservedExceedsCapacity)
	})
}

func TestExecute_UpdateFailure(t *testing.T) {
	repo := &fakeSlotRepo{stored: storedSlot(t), updateErr: errors.New("db down")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}

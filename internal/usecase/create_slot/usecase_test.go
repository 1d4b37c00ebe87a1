package create_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	serviceRepo "github.com/SahanHeshan/GovPortal/internal/infra/storage/govservice"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

type fakeSlotRepo struct {
	created []*domain.TimeSlot
	err     error
	nextID  int64
}

func (r *fakeSlotRepo) Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	out := *s
	out.SlotID = r.nextID
	r.created = append(r.created, &out)
	return &out, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	svc, ok := r.services[serviceID]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeTxManager struct {
	calls int
	err   error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
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

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		ReservationID:  1,
		BookingDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      mustTime(t, "09:00"),
		EndTime:        mustTime(t, "10:30"),
		MaxCapacity:    10,
		ReservedCount:  0,
		RecurrentCount: 1,
		Status:         domain.StatusAvailable,
	}
}

func newUseCase(slots *fakeSlotRepo, services *fakeServiceRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(slots, services, tx, nopLogger{})
	uc.timeProvider = &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func defaultServices() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ServiceID: 1, ServiceNameEN: "Birth Certificate"},
	}}
}

func TestExecute_SingleSlot(t *testing.T) {
	slots := &fakeSlotRepo{}
	tx := &fakeTxManager{}
	uc := newUseCase(slots, defaultServices(), tx)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, int64(1), resp.Slot.SlotID)
	assert.Equal(t, 1, tx.calls)
	require.Len(t, slots.created, 1)
	assert.Equal(t, "2026-03-15", slots.created[0].BookingDate.Format(domain.DateFormat))
}

func TestExecute_RecurrenceExpandsConsecutiveDays(t *testing.T) {
	slots := &fakeSlotRepo{}
	uc := newUseCase(slots, defaultServices(), &fakeTxManager{})

	req := validRequest(t)
	req.RecurrentCount = 3

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.CreatedCount)
	require.Len(t, slots.created, 3)
	assert.Equal(t, "2026-03-15", slots.created[0].BookingDate.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-16", slots.created[1].BookingDate.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-17", slots.created[2].BookingDate.Format(domain.DateFormat))

	// Every instance carries the same times and recurrence marker
	for _, s := range slots.created {
		assert.Equal(t, "09:00", s.StartTime.String())
		assert.Equal(t, 3, s.RecurrentCount)
	}

	// The response is the first instance
	assert.Equal(t, slots.created[0].SlotID, resp.Slot.SlotID)
}

func TestExecute_RecurrenceZeroMeansOne(t *testing.T) {
	slots := &fakeSlotRepo{}
	uc := newUseCase(slots, defaultServices(), &fakeTxManager{})

	req := validRequest(t)
	req.RecurrentCount = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
	assert.Len(t, slots.created, 1)
}

func TestExecute_ValidationOrder(t *testing.T) {
	uc := newUseCase(&fakeSlotRepo{}, defaultServices(), &fakeTxManager{})

	t.Run("missing fields win over capacity", func(t *testing.T) {
		req := validRequest(t)
		req.StartTime = ""
		req.ReservedCount = 99

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingRequiredFields)
	})

	t.Run("time order wins over capacity", func(t *testing.T) {
		req := validRequest(t)
		req.StartTime = mustTime(t, "10:00")
		req.EndTime = mustTime(t, "09:00")
		req.ReservedCount = 99

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEndBeforeStart)
	})

	t.Run("reserved over capacity", func(t *testing.T) {
		req := validRequest(t)
		req.ReservedCount = 11

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrReservedExceedsCapacity)
	})

	t.Run("capacity bounds", func(t *testing.T) {
		req := validRequest(t)
		req.MaxCapacity = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("recurrence bounds", func(t *testing.T) {
		req := validRequest(t)
		req.RecurrentCount = domain.MaxRecurrentCount + 1

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRecurrence)
	})

	t.Run("status outside the closed set", func(t *testing.T) {
		req := validRequest(t)
		req.Status = domain.SlotStatus("other")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestExecute_DateInPast(t *testing.T) {
	slots := &fakeSlotRepo{}
	uc := newUseCase(slots, defaultServices(), &fakeTxManager{})

	t.Run("yesterday rejected", func(t *testing.T) {
		req := validRequest(t)
		req.BookingDate = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateInPast)
		assert.Empty(t, slots.created)
	})

	t.Run("today accepted regardless of clock time", func(t *testing.T) {
		req := validRequest(t)
		req.BookingDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(&fakeSlotRepo{}, &fakeServiceRepo{services: map[int64]*domain.Service{}}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_TransactionFailure(t *testing.T) {
	tx := &fakeTxManager{err: errors.New("serialization conflict")}
	uc := newUseCase(&fakeSlotRepo{}, defaultServices(), tx)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepoFailureInsideTransaction(t *testing.T) {
	slots := &fakeSlotRepo{err: errors.New("insert failed")}
	uc := newUseCase(slots, defaultServices(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}

package slotfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
	"github.com/SahanHeshan/GovPortal/pkg/ptr"
)

func sampleSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{SlotID: 1, ReservationID: 1, BookingDate: "2024-01-15", StartTime: "09:00:00"},
		{SlotID: 2, ReservationID: 1, BookingDate: "2024-01-16", StartTime: "10:00:00"},
		{SlotID: 3, ReservationID: 2, BookingDate: "2024-01-15", StartTime: "11:00:00"},
		{SlotID: 4, ReservationID: 2, BookingDate: "2024-01-17", StartTime: "12:00:00"},
	}
}

func TestFilter_Identity(t *testing.T) {
	slots := sampleSlots()

	got := Filter(slots, Criteria{})

	assert.Equal(t, slots, got)
}

func TestFilter_ByDate(t *testing.T) {
	slots := []models.TimeSlot{
		{SlotID: 1, ReservationID: 1, BookingDate: "2024-01-15"},
		{SlotID: 2, ReservationID: 1, BookingDate: "2024-01-16"},
	}

	got := Filter(slots, Criteria{Date: ptr.Ptr("2024-01-15")})

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].SlotID)
}

func TestFilter_ByService(t *testing.T) {
	got := Filter(sampleSlots(), Criteria{ReservationID: ptr.Ptr(int64(2))})

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].SlotID)
	assert.Equal(t, int64(4), got[1].SlotID)
}

func TestFilter_Conjunction(t *testing.T) {
	slots := sampleSlots()
	date := ptr.Ptr("2024-01-15")
	service := ptr.Ptr(int64(2))

	both := Filter(slots, Criteria{Date: date, ReservationID: service})

	require.Len(t, both, 1)
	assert.Equal(t, int64(3), both[0].SlotID)

	// Filters compose: applying them in sequence gives the same result
	sequential := Filter(Filter(slots, Criteria{Date: date}), Criteria{ReservationID: service})
	assert.Equal(t, both, sequential)

	reversed := Filter(Filter(slots, Criteria{ReservationID: service}), Criteria{Date: date})
	assert.Equal(t, both, reversed)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleSlots(), Criteria{ReservationID: ptr.Ptr(int64(1))})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].SlotID)
	assert.Equal(t, int64(2), got[1].SlotID)
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := Criteria{Date: ptr.Ptr("2024-01-15")}
	slots := sampleSlots()

	first := Filter(slots, criteria)
	second := Filter(slots, criteria)

	assert.Equal(t, first, second)
}

func TestFilter_DoesNotShareBacking(t *testing.T) {
	slots := sampleSlots()

	got := Filter(slots, Criteria{})
	got[0].SlotID = 999

	assert.Equal(t, int64(1), slots[0].SlotID)
}

func TestFilter_DateWithTimeComponent(t *testing.T) {
	slots := []models.TimeSlot{
		{SlotID: 1, BookingDate: "2024-01-15T00:00:00"},
		{SlotID: 2, BookingDate: "2024-01-16"},
	}

	got := Filter(slots, Criteria{Date: ptr.Ptr("2024-01-15")})

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].SlotID)
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleSlots(), Criteria{Date: ptr.Ptr("2030-01-01")})
	assert.Empty(t, got)
}

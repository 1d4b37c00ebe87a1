package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "09:30:00", want: "09:30"},
		{name: "unpadded hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "non numeric", input: "aa:bb", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Components(t *testing.T) {
	ts, err := NewTimeStringFromString("14:45")
	require.NoError(t, err)

	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
	assert.Equal(t, 14*60+45, ts.MinuteOfDay())
	assert.Equal(t, "14:45:00", ts.WithSeconds())
}

func TestTimeString_Ordering(t *testing.T) {
	early, _ := NewTimeStringFromString("09:00")
	late, _ := NewTimeStringFromString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, _ := NewTimeStringFromString("23:30")

	shifted, err := ts.AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, "23:45", shifted.String())

	_, err = ts.AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = ts.AddMinutes(-24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15:30"))
	assert.Equal(t, "10:15", ts.String())

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, "08:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 16, 20, 0, 0, time.UTC)))
	assert.Equal(t, "16:20", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeFormat)
}

func TestTimeString_JSON(t *testing.T) {
	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"09:00:00"`), &ts))
	assert.Equal(t, "09:00", ts.String())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"09:00"`, string(out))
}

func TestTimeString_Value(t *testing.T) {
	ts, _ := NewTimeStringFromString("11:00")
	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)

	var zero TimeString
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

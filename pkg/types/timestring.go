package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat is returned when a string is not a valid "HH:MM" value
	ErrInvalidTimeFormat = errors.New("invalid time string format")
)

// TimeString represents a wall-clock time of day as a canonical "HH:MM" string.
// Zero-padded, 24-hour, no timezone. The zero value is the empty string.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses "HH:MM" (or "HH:MM:SS", the seconds are dropped)
// into a canonical TimeString. Returns ErrInvalidTimeFormat on malformed input.
func NewTimeStringFromString(s string) (TimeString, error) {
	h, m, err := splitHourMinute(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// String returns the canonical "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if no time has been set
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	_, _, err := splitHourMinute(string(t))
	return err
}

// Hour returns the hour component (0-23)
func (t TimeString) Hour() int {
	h, _, _ := splitHourMinute(string(t))
	return h
}

// Minute returns the minute component (0-59)
func (t TimeString) Minute() int {
	_, m, _ := splitHourMinute(string(t))
	return m
}

// MinuteOfDay returns the time as minutes since midnight (0-1439)
func (t TimeString) MinuteOfDay() int {
	h, m, _ := splitHourMinute(string(t))
	return h*60 + m
}

// IsBefore reports whether t is strictly earlier in the day than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinuteOfDay() < other.MinuteOfDay()
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinuteOfDay() > other.MinuteOfDay()
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Returns an error if the result would leave the same calendar day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, err := splitHourMinute(string(t))
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes leaves the day", ErrInvalidTimeFormat, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// WithSeconds returns the "HH:MM:SS" form the backend wire format expects
func (t TimeString) WithSeconds() string {
	return string(t) + ":00"
}

// Value implements driver.Valuer so a TimeString can be bound as a TIME column
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as "HH:MM:SS" strings
// or as time.Time depending on the driver path; both are accepted.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeFormat, src)
	}
}

// MarshalJSON renders the canonical "HH:MM" string
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts "HH:MM" and "HH:MM:SS" strings
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func splitHourMinute(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return h, m, nil
}

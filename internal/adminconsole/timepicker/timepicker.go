// Package timepicker converts between the canonical 24-hour "HH:MM" value
// the slot forms store and the split hour/minute/meridiem representation the
// picker controls select independently.
package timepicker

import (
	"fmt"

	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// Meridiem is the AM/PM half of a 12-hour display value
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// DisplayParts is a time value split for independently-selectable controls.
// Meridiem is meaningful only in 12-hour mode; in 24-hour mode it is empty
// and Hour carries the 0-23 value directly.
type DisplayParts struct {
	Hour     int
	Minute   int
	Meridiem Meridiem
}

// ToDisplayParts splits a canonical "HH:MM" value for the picker controls.
// An empty value yields the midnight-equivalent default rather than an error:
// a fresh form has no time selected yet and the controls still need a
// position. Malformed input fails with types.ErrInvalidTimeFormat.
func ToDisplayParts(value string, use12Hour bool) (DisplayParts, error) {
	if value == "" {
		if use12Hour {
			return DisplayParts{Hour: 12, Minute: 0, Meridiem: AM}, nil
		}
		return DisplayParts{Hour: 0, Minute: 0}, nil
	}

	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return DisplayParts{}, err
	}

	hour, minute := t.Hour(), t.Minute()
	if !use12Hour {
		return DisplayParts{Hour: hour, Minute: minute}, nil
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	meridiem := AM
	if hour >= 12 {
		meridiem = PM
	}

	return DisplayParts{Hour: hour12, Minute: minute, Meridiem: meridiem}, nil
}

// FromDisplayParts rebuilds the canonical "HH:MM" value from picker parts.
// Inverse of ToDisplayParts for every well-formed value.
func FromDisplayParts(parts DisplayParts, use12Hour bool) (string, error) {
	if parts.Minute < 0 || parts.Minute > 59 {
		return "", fmt.Errorf("%w: minute %d out of range", types.ErrInvalidTimeFormat, parts.Minute)
	}

	hour24 := parts.Hour
	if use12Hour {
		if parts.Hour < 1 || parts.Hour > 12 {
			return "", fmt.Errorf("%w: hour %d out of 12-hour range", types.ErrInvalidTimeFormat, parts.Hour)
		}
		if parts.Meridiem != AM && parts.Meridiem != PM {
			return "", fmt.Errorf("%w: meridiem %q", types.ErrInvalidTimeFormat, parts.Meridiem)
		}
		hour24 = parts.Hour % 12
		if parts.Meridiem == PM {
			hour24 += 12
		}
	} else if parts.Hour < 0 || parts.Hour > 23 {
		return "", fmt.Errorf("%w: hour %d out of range", types.ErrInvalidTimeFormat, parts.Hour)
	}

	return fmt.Sprintf("%02d:%02d", hour24, parts.Minute), nil
}

// Format renders a human label for a canonical value, e.g. "09:05 AM"
// or "21:05"
func Format(value string, use12Hour bool) (string, error) {
	parts, err := ToDisplayParts(value, use12Hour)
	if err != nil {
		return "", err
	}

	if use12Hour {
		return fmt.Sprintf("%02d:%02d %s", parts.Hour, parts.Minute, parts.Meridiem), nil
	}
	return fmt.Sprintf("%02d:%02d", parts.Hour, parts.Minute), nil
}

// ClampToWindow pulls a value inside an allowed [min, max] window by
// minute-of-day comparison. Either bound may be empty, which leaves that side
// open. Idempotent: clamping a clamped value is a no-op.
func ClampToWindow(value, min, max string) (string, error) {
	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", err
	}

	if min != "" {
		lo, err := types.NewTimeStringFromString(min)
		if err != nil {
			return "", err
		}
		if t.MinuteOfDay() < lo.MinuteOfDay() {
			return lo.String(), nil
		}
	}

	if max != "" {
		hi, err := types.NewTimeStringFromString(max)
		if err != nil {
			return "", err
		}
		if t.MinuteOfDay() > hi.MinuteOfDay() {
			return hi.String(), nil
		}
	}

	return t.String(), nil
}

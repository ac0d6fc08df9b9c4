package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day as a zero-padded "HH:MM" string.
// Lexicographic order on valid values matches chronological order, so
// values can be compared and sorted as plain strings.
type TimeString string

const timeLayout = "15:04"

var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Re-format so "9:05" style inputs are rejected rather than normalized.
	if t.Format(timeLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is unset.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed zero-padded HH:MM string.
func (ts TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(ts))
	return err
}

// Minutes returns the value as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, ts)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FromMinutes converts minutes since midnight back into a TimeString.
// Fails for values outside a single day.
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes)
}

// IsBefore reports whether ts is strictly earlier than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value implements driver.Valuer so the type can be written directly.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Accepts TEXT/VARCHAR columns and TIME
// columns surfaced by the driver as time.Time.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v[:min(len(v), 5)])
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		return ts.Scan(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// Layouts.
const (
	ISODate        = time.DateOnly
	ISODateTime    = "2006-01-02T15:04:05"
	FrenchDate     = "02/01/2006"
	FrenchDateTime = "02/01/2006 15:04:05"
)

var ErrInvalidDate = errors.New("dateutil: invalid date")

// Today returns the current date at midnight, local time.
func Today() time.Time {
	return DateOf(time.Now())
}

// Now returns the current local time truncated to the second.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// DateOf drops the clock part of t, keeping its location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a date in local time.
func ParseDate(s, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, err)
	}
	return DateOf(t), nil
}

// ParseDateTime parses a date-time in local time. With ISODateTime an
// explicit offset ("2024-01-31T10:00:00+02:00" or a trailing "Z") is also
// accepted.
func ParseDateTime(s, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err == nil {
		return t, nil
	}
	if layout == ISODateTime {
		if t, rfcErr := time.Parse(time.RFC3339Nano, s); rfcErr == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, err)
}

// Format renders t with layout.
func Format(t time.Time, layout string) string {
	return t.Format(layout)
}

// DaysBetween counts calendar days from start to end, negative when end is
// before start. Clock parts and DST shifts are ignored.
func DaysBetween(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// AddDays moves t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsBetween reports whether t lies in [start, end].
func IsBetween(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

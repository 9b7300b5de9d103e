package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	LayoutDay  = "2006-01-02"
	LayoutLong = "Monday, January 2, 2006"
)

// StartOfDay is midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay is the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayKey identifies t's local calendar day.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutDay)
}

// AddDays steps whole calendar days, staying at midnight across DST changes.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// ParseDate reads flag input such as "2024-03-01", "today" or "yesterday"
// as a local calendar day.
func ParseDate(s string, now time.Time) (time.Time, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "today":
		return StartOfDay(now), nil
	case "yesterday":
		return AddDays(now, -1), nil
	default:
		t, err := time.ParseInLocation(LayoutDay, v, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
		return t, nil
	}
}

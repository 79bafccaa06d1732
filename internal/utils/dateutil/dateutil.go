// Package dateutil is the single place where calendar dates are extracted,
// parsed and bucketed. Work dates, pay-rate effective dates and payment-period
// boundaries are plain "YYYY-MM-DD" strings throughout the application; this
// package guarantees they are derived from the server's local calendar and
// never round-tripped through a timezone-aware parse that could shift the day.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar-date format used everywhere.
const Layout = "2006-01-02"

// FromTime extracts the local calendar date of t.
func FromTime(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// Today returns the server's current local calendar date.
func Today() string {
	return FromTime(time.Now())
}

// Normalize takes the leading YYYY-MM-DD of an incoming date string verbatim.
// Inputs such as "2025-08-01T00:00:00Z" reduce to "2025-08-01" without
// re-parsing through a timezone-aware constructor.
func Normalize(s string) string {
	if len(s) > len(Layout) {
		return s[:len(Layout)]
	}
	return s
}

// Parse validates s as a calendar date and returns it as a midnight-local time.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, Normalize(s), time.Local)
}

// IsValid reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// WeekStart returns the Sunday-aligned start of the week containing date.
// The bucket is computed by subtracting the date's weekday, so a Sunday maps
// to itself.
func WeekStart(date string) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return FromTime(t.AddDate(0, 0, -int(t.Weekday()))), nil
}

// MonthKey returns the YYYY-MM bucket for date.
func MonthKey(date string) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%02d", t.Year(), t.Month()), nil
}

// InRange reports whether date falls within [start, end] inclusive.
// Lexicographic comparison is exact for YYYY-MM-DD strings.
func InRange(date, start, end string) bool {
	d := Normalize(date)
	return d >= Normalize(start) && d <= Normalize(end)
}

package timeutil

import (
	"errors"
	"fmt"
	"time"
)

var ErrFormat = errors.New("unrecognized time format")

const (
	clockLayout = "3:04 PM"
	dateLayout  = "2006-01-02"
)

// ParseClockTime parses a 12-hour wall-clock string like "5:00 PM" or
// "05:00 PM". The result carries no calendar date and is comparable only
// against other values produced by this function.
func ParseClockTime(text string) (time.Time, error) {
	t, err := time.Parse(clockLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse clock time %q: %w", text, ErrFormat)
	}
	return t, nil
}

// ParseCalendarDate parses an ISO date, with or without a trailing
// time-of-day. Only the date portion is kept.
func ParseCalendarDate(text string) (time.Time, error) {
	if len(text) > len(dateLayout) {
		text = text[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", text, ErrFormat)
	}
	return t, nil
}

// FormatClockTime is the inverse of ParseClockTime: zero-padded minutes and
// an uppercase AM/PM designator.
func FormatClockTime(t time.Time) string {
	return t.Format(clockLayout)
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(dateLayout)
}

// OrdinalDay renders n with its English ordinal suffix ("1st", "22nd").
// 11-13 take "th" regardless of the last digit.
func OrdinalDay(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// TruncateToDay drops the time-of-day portion of t.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the first and last day of the 7-day window containing
// date. With mondayStart the window runs Monday through Sunday, otherwise
// Sunday through Saturday.
func WeekBounds(date time.Time, mondayStart bool) (time.Time, time.Time) {
	day := TruncateToDay(date)
	offset := int(day.Weekday())
	if mondayStart {
		offset = (offset + 6) % 7
	}
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the calendar month
// containing date.
func MonthBounds(date time.Time) (time.Time, time.Time) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return first, first.AddDate(0, 1, -1)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

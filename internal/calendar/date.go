package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical key format for a calendar date.
	DateLayout = "2006-01-02"
	// MonthLayout is the canonical key format for a calendar month.
	MonthLayout = "2006-01"
)

// ParseDate parses a strict "YYYY-MM-DD" date key into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// DateKey formats t as a "YYYY-MM-DD" key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthOf returns the "YYYY-MM" part of a date key.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// ResolveDate parses a user-supplied date expression relative to now.
// Supports: "today", "yesterday", "tomorrow", "monday" (most recent
// occurrence, today included), "last monday" (strictly before today),
// "2025-06-02", "jun 2", "jun 2 2025", "2 june", "2 june 2025".
// The result is a "YYYY-MM-DD" key.
func ResolveDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	today := truncateToDay(now)
	switch s {
	case "", "today":
		return DateKey(today), nil
	case "yesterday":
		return DateKey(today.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return DateKey(today.AddDate(0, 0, 1)), nil
	}

	if name, ok := strings.CutPrefix(s, "last "); ok {
		if wd, ok := parseWeekday(name); ok {
			return DateKey(previousWeekday(today, wd, false)), nil
		}
	}
	if wd, ok := parseWeekday(s); ok {
		return DateKey(previousWeekday(today, wd, true)), nil
	}

	layouts := []string{
		DateLayout,
		"jan 2",
		"jan 2 2006",
		"january 2",
		"january 2 2006",
		"2 jan",
		"2 jan 2006",
		"2 january",
		"2 january 2006",
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return DateKey(t), nil
	}

	return "", fmt.Errorf("unrecognized date %q", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// previousWeekday returns the most recent occurrence of wd at or before
// today. With includeToday unset, today itself is skipped.
func previousWeekday(today time.Time, wd time.Weekday, includeToday bool) time.Time {
	daysBack := int(today.Weekday()) - int(wd)
	if daysBack < 0 {
		daysBack += 7
	}
	if daysBack == 0 && !includeToday {
		daysBack = 7
	}
	return today.AddDate(0, 0, -daysBack)
}

// DayOfWeek returns 0 for Monday through 6 for Sunday.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return DayOfWeek(t) >= 5
}

// WeekNumber returns the ISO-8601 week number of t (weeks start on Monday).
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

var dayAbbrevs = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// DayAbbrev returns a two-letter weekday label, Monday first.
func DayAbbrev(t time.Time) string {
	return dayAbbrevs[DayOfWeek(t)]
}

package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/teambition/rrule-go"
)

var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParseYearMonth splits a "YYYY-MM" key into its year and month.
func ParseYearMonth(ym string) (int, time.Month, error) {
	m := yearMonthPattern.FindStringSubmatch(ym)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", ym)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q (month must be 01-12)", ym)
	}
	return year, time.Month(month), nil
}

// IsValidYearMonth accepts "YYYY-MM" keys between 2000-01 and 2100-12.
func IsValidYearMonth(ym string) bool {
	year, _, err := ParseYearMonth(ym)
	if err != nil {
		return false
	}
	return year >= 2000 && year <= 2100
}

// CurrentMonth returns the "YYYY-MM" key of now.
func CurrentMonth(now time.Time) string {
	return now.Format(MonthLayout)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDates lists every date key of the month in calendar order.
func MonthDates(ym string) ([]string, error) {
	year, month, err := ParseYearMonth(ym)
	if err != nil {
		return nil, err
	}
	n := DaysIn(year, month)
	dates := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		dates = append(dates, DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)))
	}
	return dates, nil
}

// PreviousMonth returns the month before ym.
func PreviousMonth(ym string) (string, error) {
	year, month, err := ParseYearMonth(ym)
	if err != nil {
		return "", err
	}
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Format(MonthLayout), nil
}

// NextMonth returns the month after ym.
func NextMonth(ym string) (string, error) {
	year, month, err := ParseYearMonth(ym)
	if err != nil {
		return "", err
	}
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Format(MonthLayout), nil
}

// FormatMonth renders ym as e.g. "June 2025".
func FormatMonth(ym string) string {
	year, month, err := ParseYearMonth(ym)
	if err != nil {
		return ym
	}
	return fmt.Sprintf("%s %d", month, year)
}

// Weekdays returns every Monday-Friday date between from and to (inclusive),
// as date keys in calendar order.
func Weekdays(from, to time.Time) ([]string, error) {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return nil, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		Dtstart:   from,
		Until:     to,
	})
	if err != nil {
		return nil, fmt.Errorf("building weekday rule: %w", err)
	}

	occurrences := r.Between(from, to, true)
	dates := make([]string, len(occurrences))
	for i, d := range occurrences {
		dates[i] = DateKey(d.UTC())
	}
	return dates, nil
}

// WorkdaysInMonth counts the Monday-Friday dates of ym. Public holidays are
// not subtracted.
func WorkdaysInMonth(ym string) (int, error) {
	year, month, err := ParseYearMonth(ym)
	if err != nil {
		return 0, err
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, time.UTC)
	days, err := Weekdays(first, last)
	if err != nil {
		return 0, err
	}
	return len(days), nil
}

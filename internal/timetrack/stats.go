package timetrack

import (
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/holiday"
)

// HolidayLookup resolves a date key to a public holiday.
type HolidayLookup interface {
	Info(date string) (holiday.Holiday, bool)
}

// DayStats is the derived view of a single date.
type DayStats struct {
	Date            string
	Entries         []entry.TimeEntry
	TotalMinutes    int
	IsWeekend       bool
	DayOfWeek       int // 0 = Monday
	Week            int // ISO week number
	HasOpenEntry    bool
	SpecialDay      entry.SpecialDay
	IsPublicHoliday bool
	HolidayName     string
}

// BuildDayStats combines a day record with holiday information. A public
// holiday overrides any special day stored on the record and keeps the
// logged entries on top of its flat credit. holidays may be nil.
func BuildDayStats(date string, rec entry.DayRecord, dailyFullMinutes int, holidays HolidayLookup, now time.Time) (DayStats, error) {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return DayStats{}, err
	}

	stats := DayStats{
		Date:         date,
		Entries:      rec.Entries,
		IsWeekend:    calendar.IsWeekend(t),
		DayOfWeek:    calendar.DayOfWeek(t),
		Week:         calendar.WeekNumber(t),
		HasOpenEntry: rec.HasOpenEntry(),
		SpecialDay:   rec.SpecialDay,
	}

	if holidays != nil {
		if h, ok := holidays.Info(date); ok {
			stats.IsPublicHoliday = true
			stats.HolidayName = h.Name
			stats.SpecialDay = entry.PublicHoliday
		}
	}

	credited := rec
	credited.SpecialDay = stats.SpecialDay
	stats.TotalMinutes = entry.DayTotal(credited, dailyFullMinutes, now)
	return stats, nil
}

// WeekSummary aggregates consecutive days sharing a week number.
type WeekSummary struct {
	WeekNumber    int
	Days          []DayStats
	TotalMinutes  int
	TargetMinutes int
	Status        Status
}

// Workdays counts the non-weekend days in the week slice.
func (w WeekSummary) Workdays() int {
	n := 0
	for _, d := range w.Days {
		if !d.IsWeekend {
			n++
		}
	}
	return n
}

// SummarizeWeeks groups days (in order) into weeks, starting a new group
// whenever the week number changes. The target of each week is its workday
// count times dailyFullMinutes.
func SummarizeWeeks(days []DayStats, dailyFullMinutes int) []WeekSummary {
	var weeks []WeekSummary
	var current []DayStats

	flush := func() {
		if len(current) == 0 {
			return
		}
		w := WeekSummary{WeekNumber: current[0].Week, Days: current}
		for _, d := range current {
			w.TotalMinutes += d.TotalMinutes
		}
		w.TargetMinutes = w.Workdays() * dailyFullMinutes
		w.Status = Classify(w.TotalMinutes, w.TargetMinutes)
		weeks = append(weeks, w)
		current = nil
	}

	for _, d := range days {
		if len(current) > 0 && d.Week != current[0].Week {
			flush()
		}
		current = append(current, d)
	}
	flush()
	return weeks
}

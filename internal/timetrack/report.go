package timetrack

import (
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

// MonthReport holds the complete derived view of one month.
type MonthReport struct {
	Month           string // "2006-01"
	DailyMinutes    int
	Days            []DayStats
	Weeks           []WeekSummary
	Workdays        int
	TotalMinutes    int
	ExpectedMinutes int
	Status          Status

	SickDays       float64
	VacationDays   float64
	PublicHolidays int
}

// Balance is the difference between logged and expected minutes.
func (r MonthReport) Balance() int {
	return r.TotalMinutes - r.ExpectedMinutes
}

// BuildMonthReport computes day stats, week summaries and month totals for
// ym. Expected minutes are the month's Monday-Friday count times
// dailyFullMinutes, regardless of holidays.
func BuildMonthReport(ym string, data entry.Data, dailyFullMinutes int, holidays HolidayLookup, now time.Time) (MonthReport, error) {
	dates, err := calendar.MonthDates(ym)
	if err != nil {
		return MonthReport{}, err
	}
	workdays, err := calendar.WorkdaysInMonth(ym)
	if err != nil {
		return MonthReport{}, err
	}

	report := MonthReport{
		Month:           ym,
		DailyMinutes:    dailyFullMinutes,
		Workdays:        workdays,
		ExpectedMinutes: workdays * dailyFullMinutes,
	}

	for _, date := range dates {
		rec, ok := data[date]
		if !ok {
			rec = entry.DayRecord{Date: date}
		}
		stats, err := BuildDayStats(date, rec, dailyFullMinutes, holidays, now)
		if err != nil {
			return MonthReport{}, err
		}
		report.Days = append(report.Days, stats)
		report.TotalMinutes += stats.TotalMinutes
		report.countSpecial(stats.SpecialDay)
	}

	report.Weeks = SummarizeWeeks(report.Days, dailyFullMinutes)
	report.Status = Classify(report.TotalMinutes, report.ExpectedMinutes)
	return report, nil
}

func (r *MonthReport) countSpecial(s entry.SpecialDay) {
	share := 1.0
	if s.IsHalfDay() {
		share = 0.5
	}
	switch s.Kind {
	case entry.KindSick:
		r.SickDays += share
	case entry.KindVacation:
		r.VacationDays += share
	case entry.KindPublicHoliday:
		r.PublicHolidays++
	}
}

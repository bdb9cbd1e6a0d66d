package timetrack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/holiday"
)

var afterAll = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func czech(t *testing.T) *holiday.Calendar {
	t.Helper()
	c, err := holiday.New("CZ")
	require.NoError(t, err)
	return c
}

// worked returns a record with a single closed entry of the given length
// starting at 09:00.
func worked(date string, minutes int) entry.DayRecord {
	d, _ := time.Parse("2006-01-02", date)
	start := d.Add(9 * time.Hour)
	end := start.Add(time.Duration(minutes) * time.Minute)
	return entry.DayRecord{
		Date:    date,
		Entries: []entry.TimeEntry{{ID: "e-" + date, Start: start, End: &end}},
	}
}

func TestBuildDayStats_Regular(t *testing.T) {
	stats, err := BuildDayStats("2025-06-02", worked("2025-06-02", 420), 480, czech(t), afterAll)
	require.NoError(t, err)

	assert.Equal(t, 420, stats.TotalMinutes)
	assert.Equal(t, 0, stats.DayOfWeek)
	assert.Equal(t, 23, stats.Week)
	assert.False(t, stats.IsWeekend)
	assert.False(t, stats.IsPublicHoliday)
	assert.False(t, stats.HasOpenEntry)
}

func TestBuildDayStats_HolidayOverridesAndAddsEntries(t *testing.T) {
	rec := worked("2025-05-08", 120)
	rec.SpecialDay = entry.Vacation(entry.PortionFull)

	stats, err := BuildDayStats("2025-05-08", rec, 480, czech(t), afterAll)
	require.NoError(t, err)

	assert.True(t, stats.IsPublicHoliday)
	assert.Equal(t, "Victory in Europe Day", stats.HolidayName)
	assert.Equal(t, entry.PublicHoliday, stats.SpecialDay)
	assert.Equal(t, 600, stats.TotalMinutes)
}

func TestBuildDayStats_NilHolidays(t *testing.T) {
	stats, err := BuildDayStats("2025-05-08", entry.DayRecord{}, 480, nil, afterAll)
	require.NoError(t, err)
	assert.False(t, stats.IsPublicHoliday)
	assert.Equal(t, 0, stats.TotalMinutes)
}

func TestBuildDayStats_OpenEntry(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	rec := entry.DayRecord{Date: "2025-06-02", Entries: []entry.TimeEntry{{ID: "a", Start: start}}}

	stats, err := BuildDayStats("2025-06-02", rec, 480, nil, start.Add(90*time.Minute))
	require.NoError(t, err)
	assert.True(t, stats.HasOpenEntry)
	assert.Equal(t, 90, stats.TotalMinutes)
}

func TestBuildDayStats_InvalidDate(t *testing.T) {
	_, err := BuildDayStats("2025-13-01", entry.DayRecord{}, 480, nil, afterAll)
	assert.Error(t, err)
}

func weekOf(t *testing.T, records map[string]entry.DayRecord, dates []string, daily int) []DayStats {
	t.Helper()
	cal := czech(t)
	var days []DayStats
	for _, d := range dates {
		s, err := BuildDayStats(d, records[d], daily, cal, afterAll)
		require.NoError(t, err)
		days = append(days, s)
	}
	return days
}

func TestSummarizeWeeks_HolidayWeekMet(t *testing.T) {
	// 2025-05-08 (Thursday) is a public holiday.
	dates := []string{"2025-05-05", "2025-05-06", "2025-05-07", "2025-05-08", "2025-05-09", "2025-05-10", "2025-05-11"}
	records := map[string]entry.DayRecord{
		"2025-05-05": worked("2025-05-05", 360),
		"2025-05-06": worked("2025-05-06", 360),
		"2025-05-07": worked("2025-05-07", 360),
		"2025-05-09": worked("2025-05-09", 360),
	}

	weeks := SummarizeWeeks(weekOf(t, records, dates, 360), 360)
	require.Len(t, weeks, 1)

	w := weeks[0]
	assert.Equal(t, 19, w.WeekNumber)
	assert.Equal(t, 5, w.Workdays())
	assert.Equal(t, 1800, w.TargetMinutes)
	assert.Equal(t, 1800, w.TotalMinutes)
	assert.Equal(t, StatusMet, w.Status)
}

func TestSummarizeWeeks_HolidayWeekOvertime(t *testing.T) {
	dates := []string{"2025-05-05", "2025-05-06", "2025-05-07", "2025-05-08", "2025-05-09"}
	records := map[string]entry.DayRecord{
		"2025-05-05": worked("2025-05-05", 360),
		"2025-05-06": worked("2025-05-06", 360),
		"2025-05-07": worked("2025-05-07", 360),
		"2025-05-09": worked("2025-05-09", 630),
	}

	weeks := SummarizeWeeks(weekOf(t, records, dates, 360), 360)
	require.Len(t, weeks, 1)
	assert.Equal(t, 2070, weeks[0].TotalMinutes)
	assert.Equal(t, StatusOvertime, weeks[0].Status)
}

func TestSummarizeWeeks_WeekendOnlySliceIsMet(t *testing.T) {
	// 2025-06-01 is a Sunday, the only day of its week inside June.
	weeks := SummarizeWeeks(weekOf(t, nil, []string{"2025-06-01", "2025-06-02"}, 480), 480)
	require.Len(t, weeks, 2)

	assert.Equal(t, 0, weeks[0].TargetMinutes)
	assert.Equal(t, StatusMet, weeks[0].Status)
	assert.Equal(t, 480, weeks[1].TargetMinutes)
	assert.Equal(t, StatusWayUnder, weeks[1].Status)
}

func TestSummarizeWeeks_Empty(t *testing.T) {
	assert.Empty(t, SummarizeWeeks(nil, 480))
}

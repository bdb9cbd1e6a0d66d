package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suzii/attendance-tracker/internal/entry"
)

func execDay(a *app, date string) (string, error) {
	cmd, out := testCmd(dayCmd)
	err := runDay(cmd, a, date)
	return out.String(), err
}

func TestDayListsEntries(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-03", 9, 0))
	seedDay(t, a, entry.DayRecord{
		Date: "2025-06-02",
		Entries: []entry.TimeEntry{
			closedEntry("a1", at("2025-06-02", 8, 0), at("2025-06-02", 12, 0)),
			closedEntry("a2", at("2025-06-02", 12, 30), at("2025-06-02", 16, 45)),
		},
	})

	out, err := execDay(a, "2025-06-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Mon, Jun 2")
	assert.Contains(t, out, "week 23")
	assert.Contains(t, out, "a1")
	assert.Contains(t, out, "08:00-12:00")
	assert.Contains(t, out, "12:30-16:45")
	assert.Contains(t, out, "8h 15m")
}

func TestDayPublicHoliday(t *testing.T) {
	a, _ := newTestApp(t, at("2025-05-02", 9, 0))

	out, err := execDay(a, "2025-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Labour Day")
	assert.Contains(t, out, "no entries")
	assert.Contains(t, out, "8h 00m")
}

func TestDayWeekendAndHalfVacation(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-09", 9, 0))
	seedDay(t, a, entry.DayRecord{Date: "2025-06-06", SpecialDay: entry.Vacation(entry.PortionSecondHalf)})

	out, err := execDay(a, "2025-06-07")
	require.NoError(t, err)
	assert.Contains(t, out, "(weekend)")

	out, err = execDay(a, "2025-06-06")
	require.NoError(t, err)
	assert.Contains(t, out, "Vacation (second half)")
	assert.Contains(t, out, "4h 00m")
}

func TestDayInvalidDate(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-02", 9, 0))

	_, err := execDay(a, "2025-13-01")
	assert.Error(t, err)
}

func TestResolveDateArg(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-04", 9, 0))

	date, err := resolveDateArg(a, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-04", date)

	date, err = resolveDateArg(a, []string{"yesterday"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", date)

	date, err = resolveDateArg(a, []string{"2025-05-30"})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-30", date)
}

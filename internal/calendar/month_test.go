package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	year, month, err := ParseYearMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.June, month)

	for _, bad := range []string{"2025-13", "2025-00", "2025-6", "june", ""} {
		_, _, err := ParseYearMonth(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsValidYearMonth(t *testing.T) {
	assert.True(t, IsValidYearMonth("2000-01"))
	assert.True(t, IsValidYearMonth("2100-12"))
	assert.False(t, IsValidYearMonth("1999-12"))
	assert.False(t, IsValidYearMonth("2101-01"))
	assert.False(t, IsValidYearMonth("2025-13"))
}

func TestMonthDates(t *testing.T) {
	dates, err := MonthDates("2024-02")
	require.NoError(t, err)
	assert.Len(t, dates, 29)
	assert.Equal(t, "2024-02-01", dates[0])
	assert.Equal(t, "2024-02-29", dates[28])
}

func TestPreviousAndNextMonth(t *testing.T) {
	prev, err := PreviousMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", prev)

	next, err := NextMonth("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", next)
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "June 2025", FormatMonth("2025-06"))
	assert.Equal(t, "nope", FormatMonth("nope"))
}

func TestWorkdaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"2025-06", 21},
		{"2025-02", 20},
		{"2024-02", 21},
		{"2025-11", 20},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			got, err := WorkdaysInMonth(tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdaysRange(t *testing.T) {
	from := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC) // Friday
	to := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)  // Tuesday

	days, err := Weekdays(from, to)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-06", "2025-06-09", "2025-06-10"}, days)

	none, err := Weekdays(to, from)
	require.NoError(t, err)
	assert.Empty(t, none)
}

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suzii/attendance-tracker/internal/attendance"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

func execMark(a *app, pk PromptKit, date, kind, portion string, yes bool) (string, error) {
	cmd, out := testCmd(markCmd)
	err := runMark(cmd, a, pk, date, kind, portion, yes)
	return out.String(), err
}

func declineAll() PromptKit {
	return PromptKit{
		Confirm: func(string) (bool, error) { return false, nil },
		Prompt:  func(string) (string, error) { return "", errors.New("unexpected prompt") },
		Select:  func(string, []string) (int, error) { return 0, errors.New("unexpected select") },
	}
}

func TestMarkVacationClearsEntries(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-03", 9, 0))
	seedDay(t, a, entry.DayRecord{
		Date:    "2025-06-02",
		Entries: []entry.TimeEntry{closedEntry("a1", at("2025-06-02", 8, 0), at("2025-06-02", 12, 0))},
	})

	out, err := execMark(a, declineAll(), "2025-06-02", "vacation", "full", true)
	require.NoError(t, err)
	assert.Contains(t, out, "Vacation")

	rec := a.tracker.Day("2025-06-02")
	assert.Empty(t, rec.Entries)
	assert.Equal(t, entry.Vacation(entry.PortionFull), rec.SpecialDay)
	assert.True(t, a.settings.IsBaked("2025-06"))
}

func TestMarkDeclinedKeepsEntries(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-03", 9, 0))
	seedDay(t, a, entry.DayRecord{
		Date:    "2025-06-02",
		Entries: []entry.TimeEntry{closedEntry("a1", at("2025-06-02", 8, 0), at("2025-06-02", 12, 0))},
	})

	out, err := execMark(a, declineAll(), "2025-06-02", "sick", "full", false)
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled")
	assert.Len(t, a.tracker.Day("2025-06-02").Entries, 1)
	assert.True(t, a.tracker.Day("2025-06-02").SpecialDay.IsNone())
}

func TestMarkHalfDayKeepsEntriesWithoutPrompt(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-03", 9, 0))
	seedDay(t, a, entry.DayRecord{
		Date:    "2025-06-02",
		Entries: []entry.TimeEntry{closedEntry("a1", at("2025-06-02", 13, 0), at("2025-06-02", 17, 0))},
	})

	_, err := execMark(a, declineAll(), "2025-06-02", "sick", "first", false)
	require.NoError(t, err)

	rec := a.tracker.Day("2025-06-02")
	assert.Len(t, rec.Entries, 1)
	assert.Equal(t, entry.Sick(entry.PortionFirstHalf), rec.SpecialDay)

	stats, err := a.dayStats("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, 480, stats.TotalMinutes)
}

func TestMarkNoneClears(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-03", 9, 0))
	seedDay(t, a, entry.DayRecord{Date: "2025-06-02", SpecialDay: entry.Sick(entry.PortionFull)})

	out, err := execMark(a, declineAll(), "2025-06-02", "none", "", false)
	require.NoError(t, err)
	assert.Contains(t, out, "no absence")
	assert.True(t, a.tracker.Day("2025-06-02").SpecialDay.IsNone())
}

func TestMarkPublicHolidayRefused(t *testing.T) {
	a, _ := newTestApp(t, at("2025-05-02", 9, 0))

	_, err := execMark(a, declineAll(), "2025-05-01", "vacation", "full", true)
	assert.ErrorIs(t, err, attendance.ErrPublicHoliday)
}

func TestMarkSelectsKind(t *testing.T) {
	a, _ := newTestApp(t, at("2025-06-03", 9, 0))
	pk := declineAll()
	var offered []string
	pk.Select = func(_ string, options []string) (int, error) {
		offered = options
		return 2, nil
	}

	_, err := execMark(a, pk, "2025-06-02", "", "full", false)
	require.NoError(t, err)
	assert.Equal(t, markKinds, offered)
	assert.Equal(t, entry.Vacation(entry.PortionFull), a.tracker.Day("2025-06-02").SpecialDay)
}

func TestParseMark(t *testing.T) {
	tests := []struct {
		kind, portion string
		want          entry.SpecialDay
		wantErr       bool
	}{
		{"none", "", entry.None, false},
		{"sick", "full", entry.Sick(entry.PortionFull), false},
		{"sick", "second", entry.Sick(entry.PortionSecondHalf), false},
		{"vacation", "first_half", entry.Vacation(entry.PortionFirstHalf), false},
		{"holiday", "", entry.None, true},
		{"sick", "third", entry.None, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.portion, func(t *testing.T) {
			got, err := parseMark(tt.kind, tt.portion)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

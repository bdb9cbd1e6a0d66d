package cli

import (
	"strings"
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

func formatClock(t time.Time) string {
	return t.Format("15:04")
}

// formatDate renders a date key as "Mon, Jun 2".
func formatDate(date string) string {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// formatSpan renders "09:00-12:30", or "13:00-..." for a running entry.
func formatSpan(e entry.TimeEntry, loc *time.Location) string {
	s := formatClock(e.Start.In(loc)) + "-"
	if e.End == nil {
		return s + "..."
	}
	return s + formatClock(e.End.In(loc))
}

// timeline draws the day's entries on a width-character 00:00-24:00 axis.
func timeline(entries []entry.TimeEntry, now time.Time, loc *time.Location, width int) string {
	cells := []rune(strings.Repeat("·", width))
	for _, e := range entries {
		local := e
		local.Start = e.Start.In(loc)
		if e.End != nil {
			end := e.End.In(loc)
			local.End = &end
		}
		from := int(entry.TimePosition(local.Start) / 100 * float64(width))
		span := int(entry.SpanWidth(local, now.In(loc)) / 100 * float64(width))
		if span == 0 {
			span = 1
		}
		mark := '█'
		if e.End == nil {
			mark = '▒'
		}
		for i := from; i < from+span && i < width; i++ {
			if i >= 0 {
				cells[i] = mark
			}
		}
	}
	return string(cells)
}

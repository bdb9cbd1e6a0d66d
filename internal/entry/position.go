package entry

import "time"

// DisplayMinutes is the width of the visualised day (00:00-24:00).
const DisplayMinutes = 24 * 60

// TimePosition maps t's clock time to a 0-100 percentage of the day.
func TimePosition(t time.Time) float64 {
	minutes := t.Hour()*60 + t.Minute()
	return float64(minutes) / DisplayMinutes * 100
}

// SpanWidth returns the width (0-100 percent) of an entry drawn on the day
// axis. Running entries extend to now.
func SpanWidth(e TimeEntry, now time.Time) float64 {
	end := now
	if e.End != nil {
		end = *e.End
	}
	w := TimePosition(end) - TimePosition(e.Start)
	switch {
	case w < 0:
		return 0
	case w > 100:
		return 100
	}
	return w
}

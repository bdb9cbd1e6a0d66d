package entry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Minutes returns the whole minutes covered by e, rounded down. Running
// entries are measured up to now.
func (e TimeEntry) Minutes(now time.Time) int {
	end := now
	if e.End != nil {
		end = *e.End
	}
	return floorMinutes(end.Sub(e.Start))
}

func floorMinutes(d time.Duration) int {
	m := d / time.Minute
	if d%time.Minute < 0 {
		m--
	}
	return int(m)
}

// EntriesTotal sums Minutes over entries.
func EntriesTotal(entries []TimeEntry, now time.Time) int {
	total := 0
	for _, e := range entries {
		total += e.Minutes(now)
	}
	return total
}

// SpecialDayMinutes is the flat credit for a special day: the full daily
// minutes for full days and public holidays, half of them (rounded down) for
// half days, zero for None.
func SpecialDayMinutes(s SpecialDay, dailyFullMinutes int) int {
	switch {
	case s.IsNone():
		return 0
	case s.IsHalfDay():
		return dailyFullMinutes / 2
	}
	return dailyFullMinutes
}

// DayTotal returns the credited minutes for a record:
// public holiday = daily minutes + entries, full sick/vacation = daily
// minutes alone, half sick/vacation = half + entries, otherwise entries.
func DayTotal(r DayRecord, dailyFullMinutes int, now time.Time) int {
	s := r.SpecialDay
	switch {
	case s.Kind == KindPublicHoliday:
		return dailyFullMinutes + EntriesTotal(r.Entries, now)
	case s.IsFullDay():
		return SpecialDayMinutes(s, dailyFullMinutes)
	case s.IsHalfDay():
		return SpecialDayMinutes(s, dailyFullMinutes) + EntriesTotal(r.Entries, now)
	}
	return EntriesTotal(r.Entries, now)
}

var durationRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// ParseDuration parses a human-friendly duration string into minutes.
// Supported formats: "30m", "1h", "1h30m".
// Returns an error for empty, zero, or negative durations.
func ParseDuration(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration format %q (expected e.g. 30m, 1h, 1h30m)", s)
	}

	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])

	total := hours*60 + mins
	if total <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return total, nil
}

// FormatMinutes renders a minute count as "7h 05m". Negative values keep
// their sign: -90 -> "-1h 30m".
func FormatMinutes(m int) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%dh %02dm", sign, m/60, m%60)
}

// FormatDecimal renders a minute count as decimal hours, e.g. "7.5h".
func FormatDecimal(m int) string {
	return fmt.Sprintf("%.1fh", float64(m)/60)
}

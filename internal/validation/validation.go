// Package validation scans attendance data for integrity problems: entries
// left running on past days, entries that end before they start, and
// overlapping entries.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

// IssueType names a category of finding.
type IssueType string

const (
	UnclosedEntry      IssueType = "unclosed_entry"
	OverlappingEntries IssueType = "overlapping_entries"
	InvalidOrder       IssueType = "invalid_order"
)

var messages = map[IssueType]string{
	UnclosedEntry:      "Unclosed time entry",
	OverlappingEntries: "Overlapping time entries",
	InvalidOrder:       "Entry ends before it starts",
}

// Issue is one finding on one date.
type Issue struct {
	Date    string    `json:"date"`
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
}

// Blocking reports whether the issue prevents starting a new session.
func (i Issue) Blocking() bool {
	return i.Type == UnclosedEntry
}

// Format renders the issue as "Mon, Jun 2: Unclosed time entry".
func (i Issue) Format() string {
	t, err := calendar.ParseDate(i.Date)
	if err != nil {
		return i.Date + ": " + i.Message
	}
	return t.Format("Mon, Jan 2") + ": " + i.Message
}

func newIssue(date string, typ IssueType) Issue {
	return Issue{Date: date, Type: typ, Message: messages[typ]}
}

// ValidateDay checks a single record. Each category is reported at most
// once. Open entries are only a problem when the date is not today, and
// are left out of the overlap check.
func ValidateDay(date string, rec entry.DayRecord, isToday bool) []Issue {
	var issues []Issue

	if rec.HasOpenEntry() && !isToday {
		issues = append(issues, newIssue(date, UnclosedEntry))
	}

	for _, e := range rec.Entries {
		if e.End != nil && e.End.Before(e.Start) {
			issues = append(issues, newIssue(date, InvalidOrder))
			break
		}
	}

	if _, _, ok := firstOverlap(rec.Entries); ok {
		issues = append(issues, newIssue(date, OverlappingEntries))
	}

	return issues
}

// firstOverlap returns the first pair of closed entries, in start order,
// where one ends strictly after the next begins.
func firstOverlap(entries []entry.TimeEntry) (entry.TimeEntry, entry.TimeEntry, bool) {
	var closed []entry.TimeEntry
	for _, e := range entries {
		if e.End != nil {
			closed = append(closed, e)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].Start.Before(closed[j].Start)
	})
	for i := 0; i+1 < len(closed); i++ {
		if closed[i].End.After(closed[i+1].Start) {
			return closed[i], closed[i+1], true
		}
	}
	return entry.TimeEntry{}, entry.TimeEntry{}, false
}

// Validate checks every record in data. Issues are ordered by date, most
// recent first; issues on the same date keep their category order.
func Validate(data entry.Data, today string) []Issue {
	dates := make([]string, 0, len(data))
	for d := range data {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var issues []Issue
	for _, d := range dates {
		issues = append(issues, ValidateDay(d, data[d], d == today)...)
	}
	return issues
}

// HasBlocking reports whether any issue blocks starting a session.
func HasBlocking(issues []Issue) bool {
	for _, i := range issues {
		if i.Blocking() {
			return true
		}
	}
	return false
}

// UnclosedDates lists dates other than today holding an open entry, most
// recent first.
func UnclosedDates(data entry.Data, today string) []string {
	var dates []string
	for d, rec := range data {
		if d != today && rec.HasOpenEntry() {
			dates = append(dates, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

var (
	ErrInvalidOrder   = errors.New("entry ends before it starts")
	ErrOverlap        = errors.New("entries overlap")
	ErrOpenInPast     = errors.New("only today may have an open entry")
	ErrMultipleOpen   = errors.New("at most one entry may be open")
	ErrTooManyEntries = fmt.Errorf("a day holds at most %d entries", entry.MaxPerDay)
)

// CheckEntries validates a replacement entry list for date before it is
// stored. Unlike ValidateDay it fails on the first problem and also checks
// the per-day cap.
func CheckEntries(date string, entries []entry.TimeEntry, isToday bool) error {
	if len(entries) > entry.MaxPerDay {
		return ErrTooManyEntries
	}

	open := 0
	for _, e := range entries {
		if e.End == nil {
			open++
			if !isToday {
				return fmt.Errorf("%s: %w", e.Start.Format("15:04"), ErrOpenInPast)
			}
			continue
		}
		if e.End.Before(e.Start) {
			return fmt.Errorf("%s-%s: %w", e.Start.Format("15:04"), e.End.Format("15:04"), ErrInvalidOrder)
		}
	}
	if open > 1 {
		return ErrMultipleOpen
	}

	if a, b, ok := firstOverlap(entries); ok {
		return fmt.Errorf("%s and %s: %w", span(a), span(b), ErrOverlap)
	}
	return nil
}

func span(e entry.TimeEntry) string {
	var b strings.Builder
	b.WriteString(e.Start.Format("15:04"))
	b.WriteString("-")
	if e.End != nil {
		b.WriteString(e.End.Format("15:04"))
	}
	return b.String()
}

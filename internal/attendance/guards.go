package attendance

import (
	"fmt"
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/validation"
)

// CanStart reports why a new session cannot start today, or nil.
func (t *Tracker) CanStart() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canStart(calendar.DateKey(t.now()))
}

func (t *Tracker) canStart(today string) error {
	if validation.HasBlocking(validation.Validate(t.data, today)) {
		return ErrUnclosedEntries
	}
	if _, ok := FindOpenEntry(t.data); ok {
		return ErrAlreadyTracking
	}
	rec := t.dayLocked(today)
	if len(rec.Entries) >= entry.MaxPerDay {
		return ErrEntryLimit
	}
	if rec.SpecialDay.IsFullDay() {
		return fmt.Errorf("%w (%s)", ErrFullDayAbsence, rec.SpecialDay.Label())
	}
	return nil
}

// CanStop reports whether a session is running.
func (t *Tracker) CanStop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := FindOpenEntry(t.data); !ok {
		return ErrNotTracking
	}
	return nil
}

// CanSetSpecialDay reports whether sd may be assigned to date.
func (t *Tracker) CanSetSpecialDay(date string, sd entry.SpecialDay) error {
	return t.canSetSpecialDay(date, sd)
}

func (t *Tracker) canSetSpecialDay(date string, sd entry.SpecialDay) error {
	if _, err := calendar.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if !sd.UserSettable() {
		return ErrNotSettable
	}
	if t.holidays != nil && t.holidays.IsHoliday(date) {
		return ErrPublicHoliday
	}
	return nil
}

// CanUpdateDay checks a replacement record before UpdateDay stores it.
func (t *Tracker) CanUpdateDay(rec entry.DayRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canUpdateDay(rec, calendar.DateKey(t.now()))
}

func (t *Tracker) canUpdateDay(rec entry.DayRecord, today string) error {
	if _, err := calendar.ParseDate(rec.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if !rec.SpecialDay.IsNone() {
		if err := t.canSetSpecialDay(rec.Date, rec.SpecialDay); err != nil {
			return err
		}
	}
	if rec.SpecialDay.IsFullDay() && len(rec.Entries) > 0 {
		return fmt.Errorf("%w (%s)", ErrFullDayAbsence, rec.SpecialDay.Label())
	}
	if err := validation.CheckEntries(rec.Date, rec.Entries, rec.Date == today); err != nil {
		return err
	}
	if rec.HasOpenEntry() {
		if ref, ok := FindOpenEntry(t.data); ok && ref.Date != rec.Date {
			return fmt.Errorf("%w (open entry on %s)", ErrAlreadyTracking, ref.Date)
		}
	}
	return nil
}

// LunchCandidate resolves the entry a lunch break would split: the entry
// with entryID, or the most recently finished entry when entryID is empty.
func (t *Tracker) LunchCandidate(date, entryID string) (entry.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lunchCandidate(date, entryID)
}

func (t *Tracker) lunchCandidate(date, entryID string) (entry.TimeEntry, error) {
	rec := t.dayLocked(date)
	if entryID != "" {
		i := rec.IndexOf(entryID)
		if i < 0 {
			return entry.TimeEntry{}, fmt.Errorf("%w: %s", ErrNoSuchEntry, entryID)
		}
		return rec.Entries[i], nil
	}

	var best entry.TimeEntry
	var bestEnd time.Time
	found := false
	for _, e := range rec.Entries {
		if e.End != nil && (!found || e.End.After(bestEnd)) {
			best, bestEnd, found = e, *e.End, true
		}
	}
	if !found {
		return entry.TimeEntry{}, ErrNoClosedEntry
	}
	return best, nil
}

// CanAddLunchBreak reports whether AddLunchBreak would split an entry.
func (t *Tracker) CanAddLunchBreak(date, entryID string, lunchMinutes int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := t.canAddLunchBreak(date, entryID, lunchMinutes)
	return err
}

func (t *Tracker) canAddLunchBreak(date, entryID string, lunchMinutes int) (entry.TimeEntry, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return entry.TimeEntry{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	e, err := t.lunchCandidate(date, entryID)
	if err != nil {
		return entry.TimeEntry{}, err
	}
	if len(t.dayLocked(date).Entries) >= entry.MaxPerDay {
		return entry.TimeEntry{}, ErrEntryLimit
	}
	if err := entry.CanSplit(e, lunchMinutes); err != nil {
		return entry.TimeEntry{}, err
	}
	return e, nil
}

package attendance

import (
	"context"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

// Every transition returns whether the data changed. A refused guard is a
// silent no-op (false, nil); the error is reserved for persistence failures,
// in which case the previous state is kept.

// Start opens a new entry on today's record.
func (t *Tracker) Start(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	today := calendar.DateKey(now)
	if err := t.canStart(today); err != nil {
		t.logger.DebugContext(ctx, "start ignored", "reason", err)
		return false, nil
	}

	next := t.data.Clone()
	rec := t.dayLocked(today)
	rec.Entries = append(rec.Entries, entry.TimeEntry{ID: t.newID(), Start: now})
	next[today] = rec

	if err := t.commit(ctx, next, today); err != nil {
		return false, err
	}
	t.logger.InfoContext(ctx, "tracking started", "date", today)
	return true, nil
}

// Stop closes the running entry, wherever it is.
func (t *Tracker) Stop(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ref, ok := FindOpenEntry(t.data)
	if !ok {
		return false, nil
	}

	end := t.now()
	if end.Before(ref.Entry.Start) {
		end = ref.Entry.Start
	}

	next := t.data.Clone()
	rec := next[ref.Date]
	i := rec.IndexOf(ref.Entry.ID)
	rec.Entries[i].End = &end
	next[ref.Date] = rec

	if err := t.commit(ctx, next, ref.Date); err != nil {
		return false, err
	}
	t.logger.InfoContext(ctx, "tracking stopped", "date", ref.Date, "minutes", rec.Entries[i].Minutes(end))
	return true, nil
}

// SetSpecialDay assigns sd to date. Full-day absences drop the day's entries;
// half days and None keep them.
func (t *Tracker) SetSpecialDay(ctx context.Context, date string, sd entry.SpecialDay) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.canSetSpecialDay(date, sd); err != nil {
		t.logger.DebugContext(ctx, "special day ignored", "date", date, "reason", err)
		return false, nil
	}

	next := t.data.Clone()
	rec := t.dayLocked(date)
	rec.SpecialDay = sd
	if sd.IsFullDay() {
		rec.Entries = []entry.TimeEntry{}
	}
	next[date] = rec

	if err := t.commit(ctx, next, date); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateDay replaces the stored record for rec.Date.
func (t *Tracker) UpdateDay(ctx context.Context, rec entry.DayRecord) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.canUpdateDay(rec, calendar.DateKey(t.now())); err != nil {
		t.logger.DebugContext(ctx, "day update ignored", "date", rec.Date, "reason", err)
		return false, nil
	}

	next := t.data.Clone()
	rec = rec.Clone()
	if rec.Entries == nil {
		rec.Entries = []entry.TimeEntry{}
	}
	next[rec.Date] = rec

	if err := t.commit(ctx, next, rec.Date); err != nil {
		return false, err
	}
	return true, nil
}

// AddLunchBreak cuts a break out of the middle of an entry of date. An empty
// entryID picks the most recently finished entry.
func (t *Tracker) AddLunchBreak(ctx context.Context, date, entryID string, lunchMinutes int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	target, err := t.canAddLunchBreak(date, entryID, lunchMinutes)
	if err != nil {
		t.logger.DebugContext(ctx, "lunch break ignored", "date", date, "reason", err)
		return false, nil
	}
	first, second, err := entry.SplitForLunch(target, lunchMinutes)
	if err != nil {
		return false, nil
	}

	next := t.data.Clone()
	rec := next[date]
	if rec.IndexOf(second.ID) >= 0 {
		second.ID = t.newID()
	}
	i := rec.IndexOf(target.ID)
	entries := make([]entry.TimeEntry, 0, len(rec.Entries)+1)
	entries = append(entries, rec.Entries[:i]...)
	entries = append(entries, first, second)
	entries = append(entries, rec.Entries[i+1:]...)
	rec.Entries = entries
	next[date] = rec

	if err := t.commit(ctx, next, date); err != nil {
		return false, err
	}
	return true, nil
}

// Replace swaps in a whole new attendance map. Month settings are left as
// they are.
func (t *Tracker) Replace(ctx context.Context, data entry.Data) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := data.Clone()
	return t.commit(ctx, next)
}

// Import parses an exported envelope and replaces the current data with it.
// On any error the current data is left untouched.
func (t *Tracker) Import(ctx context.Context, raw []byte) (int, error) {
	rec, err := Decode(raw)
	if err != nil {
		return 0, err
	}
	if rec.Version != Version {
		t.logger.WarnContext(ctx, "import version mismatch", "expected", Version, "got", rec.Version)
	}
	if err := t.Replace(ctx, rec.Data); err != nil {
		return 0, err
	}
	return len(rec.Data), nil
}

// Export renders the current data as an indented envelope.
func (t *Tracker) Export() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Encode(t.data, t.clock())
}

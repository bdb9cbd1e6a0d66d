// Package attendance holds the attendance state machine: the map of day
// records plus the transitions that start and stop sessions, mark special
// days, edit days and insert lunch breaks. All state lives in an explicitly
// constructed Tracker; every transition persists a new copy of the map
// before making it visible.
package attendance

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/log"
	"github.com/Suzii/attendance-tracker/internal/storage"
	"github.com/Suzii/attendance-tracker/internal/validation"
)

// HolidayLookup reports public holidays by date key.
type HolidayLookup interface {
	IsHoliday(date string) bool
}

// MonthBaker freezes the daily target of a month once it sees activity.
type MonthBaker interface {
	EnsureBaked(ctx context.Context, month string) error
}

type Options struct {
	Store    storage.Store
	Holidays HolidayLookup
	Settings MonthBaker
	Location *time.Location
	Clock    func() time.Time
	NewID    func() string
	Logger   *log.Logger
}

type Tracker struct {
	mu       sync.Mutex
	store    storage.Store
	holidays HolidayLookup
	settings MonthBaker
	loc      *time.Location
	clock    func() time.Time
	newID    func() string
	logger   *log.Logger

	data entry.Data
}

func New(opts Options) *Tracker {
	t := &Tracker{
		store:    opts.Store,
		holidays: opts.Holidays,
		settings: opts.Settings,
		loc:      opts.Location,
		clock:    opts.Clock,
		newID:    opts.NewID,
		logger:   opts.Logger,
		data:     entry.Data{},
	}
	if t.loc == nil {
		t.loc = time.Local
	}
	if t.clock == nil {
		t.clock = time.Now
	}
	if t.newID == nil {
		t.newID = entry.NewID
	}
	if t.logger == nil {
		t.logger = log.Discard()
	}
	t.logger = t.logger.WithComponent("attendance")
	return t
}

// OpenRef locates the running entry.
type OpenRef struct {
	Date  string
	Entry entry.TimeEntry
}

// FindOpenEntry returns the running entry, if any. It is the only place the
// tracking state is derived from. Should the data hold more than one open
// entry, the one on the earliest date wins.
func FindOpenEntry(data entry.Data) (OpenRef, bool) {
	dates := make([]string, 0, len(data))
	for d := range data {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		if e, ok := data[d].OpenEntry(); ok {
			return OpenRef{Date: d, Entry: e}, true
		}
	}
	return OpenRef{}, false
}

// Load replaces the in-memory map with the stored one. Missing or unreadable
// data leaves the tracker empty; read and parse failures are logged.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	raw, err := t.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		t.data = entry.Data{}
		return
	}
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to load attendance data", "error", err)
		t.data = entry.Data{}
		return
	}

	rec, err := Decode(raw)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to parse attendance data", "error", err)
		t.data = entry.Data{}
		return
	}
	if rec.Version != Version {
		t.logger.WarnContext(ctx, "storage version mismatch", "expected", Version, "got", rec.Version)
	}
	t.data = rec.Data

	if ref, ok := FindOpenEntry(t.data); ok {
		t.logger.DebugContext(ctx, "resuming open entry", "date", ref.Date, "id", ref.Entry.ID)
	}
}

func (t *Tracker) now() time.Time {
	return t.clock().In(t.loc)
}

// Today returns the current date key in the tracker's time zone.
func (t *Tracker) Today() string {
	return calendar.DateKey(t.now())
}

// Now returns the tracker's clock reading in its time zone.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Location returns the time zone date keys are computed in.
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// Data returns a deep copy of the attendance map.
func (t *Tracker) Data() entry.Data {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data.Clone()
}

// Day returns the record for date, or an empty one.
func (t *Tracker) Day(date string) entry.DayRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dayLocked(date)
}

func (t *Tracker) dayLocked(date string) entry.DayRecord {
	if rec, ok := t.data[date]; ok {
		return rec.Clone()
	}
	return entry.DayRecord{Date: date}
}

// Tracking returns the running entry, if any.
func (t *Tracker) Tracking() (OpenRef, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ref, ok := FindOpenEntry(t.data)
	if ok {
		ref.Entry = ref.Entry.Clone()
	}
	return ref, ok
}

// Elapsed returns how long the running entry has been open at now. It never
// changes state.
func (t *Tracker) Elapsed(now time.Time) (time.Duration, bool) {
	ref, ok := t.Tracking()
	if !ok {
		return 0, false
	}
	d := now.Sub(ref.Entry.Start)
	if d < 0 {
		d = 0
	}
	return d, true
}

// Issues validates the whole map against today's date.
func (t *Tracker) Issues() []validation.Issue {
	t.mu.Lock()
	defer t.mu.Unlock()
	return validation.Validate(t.data, calendar.DateKey(t.now()))
}

// Months lists the months present in the data, oldest first.
func (t *Tracker) Months() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return months(t.data)
}

func months(data entry.Data) []string {
	seen := make(map[string]bool)
	var out []string
	for d := range data {
		m := calendar.MonthOf(d)
		if m != "" && !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}

// commit persists next, swaps it in and bakes the touched months. The
// caller holds t.mu.
func (t *Tracker) commit(ctx context.Context, next entry.Data, touched ...string) error {
	raw, err := Encode(next, t.clock())
	if err != nil {
		return err
	}
	if err := t.store.Put(ctx, StorageKey, raw); err != nil {
		return err
	}
	t.data = next

	if t.settings == nil {
		return nil
	}
	for _, date := range touched {
		month := calendar.MonthOf(date)
		if err := t.settings.EnsureBaked(ctx, month); err != nil {
			t.logger.WarnContext(ctx, "failed to bake month settings", "month", month, "error", err)
		}
	}
	return nil
}

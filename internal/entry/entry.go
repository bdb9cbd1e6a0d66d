package entry

import (
	"time"

	"github.com/google/uuid"

	"github.com/Suzii/attendance-tracker/internal/hashutil"
)

// MaxPerDay caps the number of entries a single day may hold.
const MaxPerDay = 10

// TimeEntry is one continuous work session. A nil End means the session is
// still running.
type TimeEntry struct {
	ID    string     `json:"id"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// IsOpen reports whether the entry is still running.
func (e TimeEntry) IsOpen() bool {
	return e.End == nil
}

// Clone returns a copy that shares no pointers with e.
func (e TimeEntry) Clone() TimeEntry {
	if e.End != nil {
		end := *e.End
		e.End = &end
	}
	return e
}

// DayRecord holds everything logged for one calendar date.
type DayRecord struct {
	Date       string      `json:"date"` // "2006-01-02"
	Entries    []TimeEntry `json:"entries"`
	SpecialDay SpecialDay  `json:"specialDay"`
}

// OpenEntry returns the first running entry of the day.
func (r DayRecord) OpenEntry() (TimeEntry, bool) {
	for _, e := range r.Entries {
		if e.IsOpen() {
			return e, true
		}
	}
	return TimeEntry{}, false
}

// HasOpenEntry reports whether any entry of the day is still running.
func (r DayRecord) HasOpenEntry() bool {
	_, ok := r.OpenEntry()
	return ok
}

// IndexOf returns the position of the entry with the given id, or -1.
func (r DayRecord) IndexOf(id string) int {
	for i, e := range r.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the record.
func (r DayRecord) Clone() DayRecord {
	entries := make([]TimeEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = e.Clone()
	}
	r.Entries = entries
	return r
}

// Data maps a date key to its record.
type Data map[string]DayRecord

// Clone deep-copies the whole map.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, r := range d {
		out[k] = r.Clone()
	}
	return out
}

// NewID returns a fresh, globally unique entry identity.
func NewID() string {
	return "entry-" + uuid.NewString()
}

// DerivedID returns a deterministic identity for an entry carved out of
// parent starting at start.
func DerivedID(parent string, start time.Time) string {
	return parent + "-" + hashutil.Short(hashutil.Seed(parent, start.UTC().Format(time.RFC3339Nano)))
}

package entry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataClone_IsDeep(t *testing.T) {
	d := Data{
		"2025-06-02": {Date: "2025-06-02", Entries: []TimeEntry{closed("a", at(9, 0), at(12, 0))}},
	}

	c := d.Clone()
	*c["2025-06-02"].Entries[0].End = at(13, 0)
	c["2025-06-02"].Entries[0].ID = "changed"

	assert.Equal(t, at(12, 0), *d["2025-06-02"].Entries[0].End)
	assert.Equal(t, "a", d["2025-06-02"].Entries[0].ID)
}

func TestDayRecord_OpenEntry(t *testing.T) {
	r := DayRecord{Entries: []TimeEntry{
		closed("a", at(9, 0), at(12, 0)),
		{ID: "b", Start: at(13, 0)},
	}}

	e, ok := r.OpenEntry()
	assert.True(t, ok)
	assert.Equal(t, "b", e.ID)
	assert.Equal(t, 1, r.IndexOf("b"))
	assert.Equal(t, -1, r.IndexOf("zzz"))

	assert.False(t, DayRecord{}.HasOpenEntry())
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "entry-"))
}

func TestTimePosition(t *testing.T) {
	assert.InDelta(t, 0.0, TimePosition(at(0, 0)), 1e-9)
	assert.InDelta(t, 50.0, TimePosition(at(12, 0)), 1e-9)
	assert.InDelta(t, 37.5, TimePosition(at(9, 0)), 1e-9)
}

func TestSpanWidth(t *testing.T) {
	assert.InDelta(t, 12.5, SpanWidth(closed("a", at(9, 0), at(12, 0)), at(23, 0)), 1e-9)
	assert.InDelta(t, 0.0, SpanWidth(closed("a", at(12, 0), at(9, 0)), at(23, 0)), 1e-9)

	open := TimeEntry{ID: "b", Start: at(12, 0)}
	assert.InDelta(t, 25.0, SpanWidth(open, at(18, 0)), 1e-9)
}

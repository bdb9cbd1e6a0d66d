package attendance

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suzii/attendance-tracker/internal/entry"
)

func sampleData() entry.Data {
	return entry.Data{
		"2025-06-02": {
			Date:    "2025-06-02",
			Entries: []entry.TimeEntry{closedAt("2025-06-02", 9, 12), closedAt("2025-06-02", 13, 17)},
		},
		"2025-06-03": {
			Date:       "2025-06-03",
			Entries:    []entry.TimeEntry{},
			SpecialDay: entry.Sick(entry.PortionFull),
		},
		"2025-06-04": {
			Date:       "2025-06-04",
			Entries:    []entry.TimeEntry{{ID: "open", Start: time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)}},
			SpecialDay: entry.Vacation(entry.PortionSecondHalf),
		},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newFixture(t)
	require.NoError(t, src.tracker.Replace(ctx, sampleData()))

	raw, err := src.tracker.Export()
	require.NoError(t, err)

	dst := newFixture(t)
	n, err := dst.tracker.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, src.tracker.Data(), dst.tracker.Data())
}

func TestExportImport_RoundTripKeepsInstants(t *testing.T) {
	ctx := context.Background()
	prague, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	start := time.Date(2025, 6, 2, 8, 15, 0, 0, prague)
	end := time.Date(2025, 6, 2, 16, 45, 30, 0, prague)
	running := time.Date(2025, 1, 14, 23, 30, 0, 0, prague)
	src := newFixture(t)
	require.NoError(t, src.tracker.Replace(ctx, entry.Data{
		"2025-06-02": {Date: "2025-06-02", Entries: []entry.TimeEntry{{ID: "summer", Start: start, End: &end}}},
		"2025-01-14": {Date: "2025-01-14", Entries: []entry.TimeEntry{{ID: "winter", Start: running}}},
	}))

	raw, err := src.tracker.Export()
	require.NoError(t, err)
	dst := newFixture(t)
	_, err = dst.tracker.Import(ctx, raw)
	require.NoError(t, err)

	summer := dst.tracker.Day("2025-06-02").Entries
	require.Len(t, summer, 1)
	assert.True(t, summer[0].Start.Equal(start), "start %s != %s", summer[0].Start, start)
	require.NotNil(t, summer[0].End)
	assert.True(t, summer[0].End.Equal(end), "end %s != %s", *summer[0].End, end)

	winter := dst.tracker.Day("2025-01-14").Entries
	require.Len(t, winter, 1)
	assert.True(t, winter[0].Start.Equal(running), "start %s != %s", winter[0].Start, running)
	assert.Nil(t, winter[0].End)
}

func TestEncode_Envelope(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	raw, err := Encode(nil, now)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, float64(Version), m["version"])
	assert.Equal(t, map[string]any{}, m["data"])
	assert.Equal(t, "2025-06-02T10:00:00Z", m["lastUpdated"])
}

func TestDecode_NormalisesDates(t *testing.T) {
	raw := `{"version":1,"data":{"2025-06-02":{"entries":[],"specialDay":null}},"lastUpdated":"2025-06-02T10:00:00Z"}`
	rec, err := Decode([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", rec.Data["2025-06-02"].Date)
}

func TestImport_RejectsInvalidAndKeepsState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.tracker.Replace(ctx, sampleData()))
	before := f.tracker.Data()

	bad := []string{
		`not json`,
		`{"version":1}`,
		`{"version":1,"data":null}`,
		`{"version":1,"data":[]}`,
		`{"version":1,"data":"2025"}`,
		`{"version":1,"data":{"yesterday":{"entries":[]}}}`,
		`{"version":1,"data":{"2025-06-02":{"entries":[],"specialDay":"party"}}}`,
	}
	for _, raw := range bad {
		_, err := f.tracker.Import(ctx, []byte(raw))
		assert.ErrorIs(t, err, ErrInvalidImport, raw)
	}
	assert.Equal(t, before, f.tracker.Data())
}

func TestImport_VersionMismatchStillImports(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	n, err := f.tracker.Import(ctx, []byte(`{"version":2,"data":{"2025-06-02":{"date":"2025-06-02","entries":[],"specialDay":"vacation"}}}`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, entry.Vacation(entry.PortionFull), f.tracker.Day("2025-06-02").SpecialDay)
}

package attendance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/entry"
)

const (
	StorageKey = "attendance-tracker-data"
	Version    = 1
)

// Record is the persisted and exported envelope around the attendance map.
type Record struct {
	Version     int        `json:"version"`
	Data        entry.Data `json:"data"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// Encode renders data as an indented envelope stamped with now.
func Encode(data entry.Data, now time.Time) ([]byte, error) {
	if data == nil {
		data = entry.Data{}
	}
	raw, err := json.MarshalIndent(Record{Version: Version, Data: data, LastUpdated: now.UTC()}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode attendance data: %w", err)
	}
	return raw, nil
}

// Decode parses an envelope. The data field must be a JSON object keyed by
// date; every record's date is normalised to its key.
func Decode(raw []byte) (Record, error) {
	var envelope struct {
		Version     int             `json:"version"`
		Data        json.RawMessage `json:"data"`
		LastUpdated time.Time       `json:"lastUpdated"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	body := bytes.TrimSpace(envelope.Data)
	if len(body) == 0 || body[0] != '{' {
		return Record{}, fmt.Errorf("%w: data must be an object", ErrInvalidImport)
	}

	var data entry.Data
	if err := json.Unmarshal(body, &data); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	for date, rec := range data {
		if _, err := calendar.ParseDate(date); err != nil {
			return Record{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
		}
		rec.Date = date
		data[date] = rec
	}

	return Record{Version: envelope.Version, Data: data, LastUpdated: envelope.LastUpdated}, nil
}

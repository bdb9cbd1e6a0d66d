package attendance

import (
	"errors"
	"fmt"

	"github.com/Suzii/attendance-tracker/internal/entry"
)

// Reasons a transition is refused. They are returned by the Can* predicates;
// the transitions themselves treat a refused guard as a no-op.
var (
	// Tracking
	ErrUnclosedEntries = errors.New("an entry from a previous day is still open; close it first")
	ErrAlreadyTracking = errors.New("already tracking")
	ErrNotTracking     = errors.New("not tracking")
	ErrEntryLimit      = fmt.Errorf("a day holds at most %d entries", entry.MaxPerDay)
	ErrFullDayAbsence  = errors.New("day is marked as a full-day absence")

	// Day edits
	ErrInvalidDate   = errors.New("invalid date")
	ErrPublicHoliday = errors.New("public holidays cannot be changed")
	ErrNotSettable   = errors.New("special day cannot be set manually")
	ErrNoSuchEntry   = errors.New("entry not found")
	ErrNoClosedEntry = errors.New("no closed entry to split")

	// Import
	ErrInvalidImport = errors.New("invalid import")
)

package entry

import (
	"errors"
	"fmt"
	"time"
)

const (
	LunchShort = 30
	LunchLong  = 60

	// minWorkAroundLunch is the span that must remain besides the break,
	// split evenly on both sides.
	minWorkAroundLunch = 60
)

var ErrCannotSplit = errors.New("cannot split entry")

// CanSplit reports whether SplitForLunch would succeed.
func CanSplit(e TimeEntry, lunchMinutes int) error {
	if e.End == nil {
		return fmt.Errorf("%w: entry is still running", ErrCannotSplit)
	}
	if lunchMinutes <= 0 {
		return fmt.Errorf("%w: lunch break must be positive", ErrCannotSplit)
	}
	need := time.Duration(lunchMinutes+minWorkAroundLunch) * time.Minute
	if e.End.Sub(e.Start) < need {
		return fmt.Errorf("%w: entry must span at least %s", ErrCannotSplit, FormatMinutes(lunchMinutes+minWorkAroundLunch))
	}
	return nil
}

// SplitForLunch carves a lunchMinutes-wide gap out of the middle of the
// entry. Both parts together are worth exactly the entry's minutes less the
// break; an odd leftover minute goes to the second part. The first part keeps
// e's identity, the second gets a derived one. e is not modified.
func SplitForLunch(e TimeEntry, lunchMinutes int) (TimeEntry, TimeEntry, error) {
	if err := CanSplit(e, lunchMinutes); err != nil {
		return TimeEntry{}, TimeEntry{}, err
	}

	before := (floorMinutes(e.End.Sub(e.Start)) - lunchMinutes) / 2
	firstEnd := e.Start.Add(time.Duration(before) * time.Minute)
	secondStart := firstEnd.Add(time.Duration(lunchMinutes) * time.Minute)
	secondEnd := *e.End

	first := TimeEntry{ID: e.ID, Start: e.Start, End: &firstEnd}
	second := TimeEntry{ID: DerivedID(e.ID, secondStart), Start: secondStart, End: &secondEnd}
	return first, second, nil
}

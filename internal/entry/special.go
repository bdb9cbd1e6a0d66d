package entry

import (
	"encoding/json"
	"fmt"
)

// Kind is the category of a special day.
type Kind int

const (
	KindNone Kind = iota
	KindSick
	KindVacation
	KindPublicHoliday
)

// Portion says which part of the day a sick or vacation day covers.
type Portion int

const (
	PortionFull Portion = iota
	PortionFirstHalf
	PortionSecondHalf
)

// SpecialDay is None, Sick(Portion), Vacation(Portion) or PublicHoliday.
// The zero value is None.
type SpecialDay struct {
	Kind    Kind
	Portion Portion
}

var (
	None          = SpecialDay{}
	PublicHoliday = SpecialDay{Kind: KindPublicHoliday}
)

// Sick returns a sick day covering portion.
func Sick(p Portion) SpecialDay { return SpecialDay{Kind: KindSick, Portion: p} }

// Vacation returns a vacation day covering portion.
func Vacation(p Portion) SpecialDay { return SpecialDay{Kind: KindVacation, Portion: p} }

// IsNone reports whether no special day is set.
func (s SpecialDay) IsNone() bool { return s.Kind == KindNone }

// IsHalfDay reports whether s is a half-day sick or vacation.
func (s SpecialDay) IsHalfDay() bool {
	return (s.Kind == KindSick || s.Kind == KindVacation) && s.Portion != PortionFull
}

// IsFullDay reports whether s is a full-day sick or vacation. Public
// holidays are not full days in this sense: they keep their entries.
func (s SpecialDay) IsFullDay() bool {
	return (s.Kind == KindSick || s.Kind == KindVacation) && s.Portion == PortionFull
}

// UserSettable reports whether s may be assigned by the user.
func (s SpecialDay) UserSettable() bool {
	return s.Kind != KindPublicHoliday
}

var kindNames = map[Kind]string{
	KindSick:          "sick",
	KindVacation:      "vacation",
	KindPublicHoliday: "public_holiday",
}

var portionSuffixes = map[Portion]string{
	PortionFull:       "",
	PortionFirstHalf:  "_first_half",
	PortionSecondHalf: "_second_half",
}

// String returns the storage name, e.g. "vacation_first_half", or "" for None.
func (s SpecialDay) String() string {
	switch s.Kind {
	case KindNone:
		return ""
	case KindPublicHoliday:
		return kindNames[KindPublicHoliday]
	}
	return kindNames[s.Kind] + portionSuffixes[s.Portion]
}

// Label returns a human-readable description.
func (s SpecialDay) Label() string {
	var base string
	switch s.Kind {
	case KindNone:
		return ""
	case KindPublicHoliday:
		return "Public holiday"
	case KindSick:
		base = "Sick day"
	case KindVacation:
		base = "Vacation"
	}
	switch s.Portion {
	case PortionFirstHalf:
		return base + " (first half)"
	case PortionSecondHalf:
		return base + " (second half)"
	}
	return base
}

var specialDays = map[string]SpecialDay{
	"":                     None,
	"sick":                 Sick(PortionFull),
	"sick_first_half":      Sick(PortionFirstHalf),
	"sick_second_half":     Sick(PortionSecondHalf),
	"vacation":             Vacation(PortionFull),
	"vacation_first_half":  Vacation(PortionFirstHalf),
	"vacation_second_half": Vacation(PortionSecondHalf),
	"public_holiday":       PublicHoliday,
}

// ParseSpecialDay parses a storage name back into a SpecialDay.
func ParseSpecialDay(s string) (SpecialDay, error) {
	sd, ok := specialDays[s]
	if !ok {
		return None, fmt.Errorf("unknown special day %q", s)
	}
	return sd, nil
}

// ParsePortion accepts "full", "first", "first_half", "second", "second_half".
func ParsePortion(s string) (Portion, error) {
	switch s {
	case "", "full":
		return PortionFull, nil
	case "first", "first_half":
		return PortionFirstHalf, nil
	case "second", "second_half":
		return PortionSecondHalf, nil
	}
	return PortionFull, fmt.Errorf("unknown portion %q (expected full, first or second)", s)
}

// MarshalJSON encodes None as null and everything else by storage name.
func (s SpecialDay) MarshalJSON() ([]byte, error) {
	if s.IsNone() {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts null or a storage name.
func (s *SpecialDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = None
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("special day must be a string or null: %w", err)
	}
	sd, err := ParseSpecialDay(name)
	if err != nil {
		return err
	}
	*s = sd
	return nil
}

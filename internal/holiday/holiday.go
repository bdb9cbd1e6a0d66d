// Package holiday computes public holidays: a fixed month-day table per
// country plus Easter Monday derived from the Gregorian computus.
package holiday

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Suzii/attendance-tracker/internal/calendar"
)

// Holiday is a single public holiday on a concrete date.
type Holiday struct {
	Date      string `json:"date"` // "2006-01-02"
	Name      string `json:"name"`
	LocalName string `json:"localName"`
}

type names struct {
	name  string
	local string
}

// Calendar answers holiday questions for one country. Results are memoized
// per year; a Calendar is safe for concurrent use.
type Calendar struct {
	country      string
	fixed        map[string]names // "01-02" -> names
	easterMonday *names

	mu    sync.Mutex
	years map[int][]Holiday
}

var czechFixed = map[string]names{
	"01-01": {"New Year's Day", "Den obnovy samostatného českého státu"},
	"05-01": {"Labour Day", "Svátek práce"},
	"05-08": {"Victory in Europe Day", "Den vítězství"},
	"07-05": {"Saints Cyril and Methodius Day", "Den slovanských věrozvěstů Cyrila a Metoděje"},
	"07-06": {"Jan Hus Day", "Den upálení mistra Jana Husa"},
	"09-28": {"Czech Statehood Day", "Den české státnosti"},
	"10-28": {"Independence Day", "Den vzniku samostatného československého státu"},
	"11-17": {"Freedom and Democracy Day", "Den boje za svobodu a demokracii"},
	"12-24": {"Christmas Eve", "Štědrý den"},
	"12-25": {"Christmas Day", "1. svátek vánoční"},
	"12-26": {"St. Stephen's Day", "2. svátek vánoční"},
}

// Countries lists the supported country codes.
func Countries() []string {
	return []string{"CZ"}
}

// New returns the holiday calendar for a country code (case-insensitive).
func New(country string) (*Calendar, error) {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "CZ":
		return &Calendar{
			country:      "CZ",
			fixed:        czechFixed,
			easterMonday: &names{"Easter Monday", "Velikonoční pondělí"},
			years:        make(map[int][]Holiday),
		}, nil
	}
	return nil, fmt.Errorf("unsupported holiday country %q (supported: %s)", country, strings.Join(Countries(), ", "))
}

// Country returns the calendar's country code.
func (c *Calendar) Country() string {
	return c.country
}

// EasterSunday returns the month and day of Easter Sunday in the Gregorian
// calendar (Meeus/Jones/Butcher). Valid for years 1583-9999.
func EasterSunday(year int) (time.Month, int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Month(month), day
}

// EasterMonday returns the date of Easter Monday for year.
func EasterMonday(year int) time.Time {
	month, day := EasterSunday(year)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// InYear returns every holiday of year sorted by date.
func (c *Calendar) InYear(year int) []Holiday {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.years[year]; ok {
		return append([]Holiday(nil), cached...)
	}

	holidays := make([]Holiday, 0, len(c.fixed)+1)
	for monthDay, n := range c.fixed {
		holidays = append(holidays, Holiday{
			Date:      fmt.Sprintf("%04d-%s", year, monthDay),
			Name:      n.name,
			LocalName: n.local,
		})
	}
	if c.easterMonday != nil {
		holidays = append(holidays, Holiday{
			Date:      calendar.DateKey(EasterMonday(year)),
			Name:      c.easterMonday.name,
			LocalName: c.easterMonday.local,
		})
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date < holidays[j].Date
	})

	c.years[year] = holidays
	return append([]Holiday(nil), holidays...)
}

// InMonth returns the holidays of a "YYYY-MM" month sorted by date.
func (c *Calendar) InMonth(ym string) ([]Holiday, error) {
	year, _, err := calendar.ParseYearMonth(ym)
	if err != nil {
		return nil, err
	}
	var out []Holiday
	for _, h := range c.InYear(year) {
		if strings.HasPrefix(h.Date, ym+"-") {
			out = append(out, h)
		}
	}
	return out, nil
}

// Info returns the holiday falling on date, if any. Malformed dates are
// never holidays.
func (c *Calendar) Info(date string) (Holiday, bool) {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return Holiday{}, false
	}
	for _, h := range c.InYear(t.Year()) {
		if h.Date == date {
			return h, true
		}
	}
	return Holiday{}, false
}

// IsHoliday reports whether date is a public holiday.
func (c *Calendar) IsHoliday(date string) bool {
	_, ok := c.Info(date)
	return ok
}

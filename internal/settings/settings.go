// Package settings resolves the daily work target for a month. Each month
// that has seen tracking activity gets the then-current default baked in,
// so later changes to the default never rewrite past months.
package settings

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Suzii/attendance-tracker/internal/calendar"
)

const (
	StorageKey = "attendance-tracker-settings"
	Version    = 1

	DefaultDailyWorkHours = 8.0
	// LegacyDailyWorkHours is baked into months that already held data
	// before settings existed, when every day counted 6 hours.
	LegacyDailyWorkHours = 6.0

	MinDailyWorkHours = 1.0
	MaxDailyWorkHours = 12.0
	hoursStep         = 0.5
)

var (
	ErrHoursOutOfRange = fmt.Errorf("daily work hours must be between %g and %g", MinDailyWorkHours, MaxDailyWorkHours)
	ErrHoursStep       = fmt.Errorf("daily work hours must be a multiple of %g", hoursStep)
	ErrInvalidMonth    = errors.New("invalid month")
)

type Settings struct {
	DailyWorkHours float64 `json:"dailyWorkHours"`
}

type MonthSettings struct {
	DailyWorkHours float64 `json:"dailyWorkHours"`
}

// Record is the persisted settings document.
type Record struct {
	Version         int                      `json:"version"`
	Settings        Settings                 `json:"settings"`
	MonthlySettings map[string]MonthSettings `json:"monthlySettings"`
}

// DefaultRecord returns settings with no baked months.
func DefaultRecord() Record {
	return Record{
		Version:         Version,
		Settings:        Settings{DailyWorkHours: DefaultDailyWorkHours},
		MonthlySettings: map[string]MonthSettings{},
	}
}

func (r Record) clone() Record {
	months := make(map[string]MonthSettings, len(r.MonthlySettings))
	for k, v := range r.MonthlySettings {
		months[k] = v
	}
	r.MonthlySettings = months
	return r
}

// WorkHoursForMonth returns the month's baked value, else the default.
func (r Record) WorkHoursForMonth(month string) float64 {
	if ms, ok := r.MonthlySettings[month]; ok {
		return ms.DailyWorkHours
	}
	return r.Settings.DailyWorkHours
}

// BakedMonths lists months with an explicit value, oldest first.
func (r Record) BakedMonths() []string {
	months := make([]string, 0, len(r.MonthlySettings))
	for m := range r.MonthlySettings {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// ValidateHours checks the 1-12 range in half-hour steps.
func ValidateHours(h float64) error {
	if math.IsNaN(h) || h < MinDailyWorkHours || h > MaxDailyWorkHours {
		return ErrHoursOutOfRange
	}
	if math.Mod(h, hoursStep) != 0 {
		return ErrHoursStep
	}
	return nil
}

// HoursToMinutes converts a daily hour target to whole minutes.
func HoursToMinutes(h float64) int {
	return int(math.Round(h * 60))
}

func validateMonth(month string) error {
	if !calendar.IsValidYearMonth(month) {
		return fmt.Errorf("%w %q (expected YYYY-MM)", ErrInvalidMonth, month)
	}
	return nil
}

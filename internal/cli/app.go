package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suzii/attendance-tracker/internal/attendance"
	"github.com/Suzii/attendance-tracker/internal/calendar"
	"github.com/Suzii/attendance-tracker/internal/config"
	"github.com/Suzii/attendance-tracker/internal/entry"
	"github.com/Suzii/attendance-tracker/internal/holiday"
	"github.com/Suzii/attendance-tracker/internal/log"
	"github.com/Suzii/attendance-tracker/internal/settings"
	"github.com/Suzii/attendance-tracker/internal/storage"
	"github.com/Suzii/attendance-tracker/internal/timetrack"
)

// app wires the domain services for one command invocation.
type app struct {
	store    storage.Store
	holidays *holiday.Calendar
	settings *settings.Resolver
	tracker  *attendance.Tracker
	logger   *log.Logger
	loc      *time.Location
	now      func() time.Time
	newID    func() string
}

type appDeps struct {
	store    storage.Store
	holidays *holiday.Calendar
	loc      *time.Location
	now      func() time.Time
	newID    func() string
	logger   *log.Logger
}

// newApp loads attendance data and then settings, so the first settings load
// can bake the months already present in the data.
func newApp(ctx context.Context, deps appDeps) *app {
	if deps.logger == nil {
		deps.logger = log.Discard()
	}
	if deps.loc == nil {
		deps.loc = time.Local
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.newID == nil {
		deps.newID = entry.NewID
	}

	res := settings.NewResolver(deps.store, deps.logger)
	tr := attendance.New(attendance.Options{
		Store:    deps.store,
		Holidays: deps.holidays,
		Settings: res,
		Location: deps.loc,
		Clock:    deps.now,
		NewID:    deps.newID,
		Logger:   deps.logger,
	})
	tr.Load(ctx)
	if err := res.Load(ctx, tr.Months()); err != nil {
		deps.logger.WarnContext(ctx, "settings load failed", "error", err)
	}

	return &app{
		store:    deps.store,
		holidays: deps.holidays,
		settings: res,
		tracker:  tr,
		logger:   deps.logger,
		loc:      deps.loc,
		now:      func() time.Time { return deps.now().In(deps.loc) },
		newID:    deps.newID,
	}
}

// openApp builds the app from the environment.
func openApp(ctx context.Context) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	config.LoadEnvFiles(homeDir)
	cfg := config.Load(homeDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.New(log.Config{Level: cfg.Level(), Component: "attendance", Output: os.Stderr})
	log.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	cal, err := holiday.New(cfg.HolidayCountry)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return newApp(ctx, appDeps{
		store:    store,
		holidays: cal,
		loc:      loc,
		logger:   logger,
	}), nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// appFactory is replaced in tests.
var appFactory = openApp

// withApp opens the app, runs fn and closes the store.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := appFactory(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a)
}

func (a *app) today() string {
	return a.tracker.Today()
}

func (a *app) dayStats(date string) (timetrack.DayStats, error) {
	daily := a.settings.DailyMinutesForMonth(calendar.MonthOf(date))
	return timetrack.BuildDayStats(date, a.tracker.Day(date), daily, a.holidays, a.now())
}

func (a *app) monthReport(month string) (timetrack.MonthReport, error) {
	daily := a.settings.DailyMinutesForMonth(month)
	return timetrack.BuildMonthReport(month, a.tracker.Data(), daily, a.holidays, a.now())
}

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Suzii/attendance-tracker/internal/log"
	"github.com/Suzii/attendance-tracker/internal/storage"
)

// Resolver owns the settings record. Every mutation is persisted before it
// becomes visible; a failed save leaves the previous record in place.
type Resolver struct {
	mu     sync.Mutex
	store  storage.Store
	logger *log.Logger
	record Record
}

func NewResolver(store storage.Store, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Discard()
	}
	return &Resolver{
		store:  store,
		logger: logger.WithComponent("settings"),
		record: DefaultRecord(),
	}
}

// Load reads the stored record. When none exists yet, every month in
// dataMonths is baked with LegacyDailyWorkHours and the result is saved
// immediately. Unreadable records fall back to defaults and are logged.
func (r *Resolver) Load(ctx context.Context, dataMonths []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.store.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return r.migrate(ctx, dataMonths)
	case err != nil:
		r.logger.ErrorContext(ctx, "failed to load settings", "error", err)
		r.record = DefaultRecord()
		return nil
	}

	rec := DefaultRecord()
	if err := json.Unmarshal(raw, &rec); err != nil {
		r.logger.ErrorContext(ctx, "failed to parse settings", "error", err)
		r.record = DefaultRecord()
		return nil
	}
	if rec.Version != Version {
		r.logger.WarnContext(ctx, "settings version mismatch", "expected", Version, "got", rec.Version)
	}
	if rec.Settings.DailyWorkHours == 0 {
		rec.Settings.DailyWorkHours = DefaultDailyWorkHours
	}
	if rec.MonthlySettings == nil {
		rec.MonthlySettings = map[string]MonthSettings{}
	}
	r.record = rec
	return nil
}

func (r *Resolver) migrate(ctx context.Context, dataMonths []string) error {
	next := DefaultRecord()
	for _, m := range dataMonths {
		next.MonthlySettings[m] = MonthSettings{DailyWorkHours: LegacyDailyWorkHours}
	}
	if len(dataMonths) > 0 {
		r.logger.InfoContext(ctx, "migrated settings for existing months",
			"months", len(next.MonthlySettings), "hours", LegacyDailyWorkHours)
	}
	if err := r.save(ctx, next); err != nil {
		r.logger.ErrorContext(ctx, "failed to save migrated settings", "error", err)
	}
	r.record = next
	return nil
}

func (r *Resolver) save(ctx context.Context, rec Record) error {
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := r.store.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// update applies fn to a copy of the record, persists it and swaps it in.
func (r *Resolver) update(ctx context.Context, fn func(rec *Record)) error {
	next := r.record.clone()
	fn(&next)
	if err := r.save(ctx, next); err != nil {
		return err
	}
	r.record = next
	return nil
}

// Record returns a copy of the current record.
func (r *Resolver) Record() Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record.clone()
}

// Default returns the global default daily hours.
func (r *Resolver) Default() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record.Settings.DailyWorkHours
}

// WorkHoursForMonth returns the month's baked value, else the default.
func (r *Resolver) WorkHoursForMonth(month string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record.WorkHoursForMonth(month)
}

// DailyMinutesForMonth is WorkHoursForMonth in minutes.
func (r *Resolver) DailyMinutesForMonth(month string) int {
	return HoursToMinutes(r.WorkHoursForMonth(month))
}

// IsBaked reports whether month has its own value.
func (r *Resolver) IsBaked(month string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.record.MonthlySettings[month]
	return ok
}

// EnsureBaked stores the current default for month unless the month already
// has a value.
func (r *Resolver) EnsureBaked(ctx context.Context, month string) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.record.MonthlySettings[month]; ok {
		return nil
	}
	hours := r.record.Settings.DailyWorkHours
	if err := r.update(ctx, func(rec *Record) {
		rec.MonthlySettings[month] = MonthSettings{DailyWorkHours: hours}
	}); err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "baked month settings", "month", month, "hours", hours)
	return nil
}

// SetDefault changes the default for months not yet baked.
func (r *Resolver) SetDefault(ctx context.Context, hours float64) error {
	if err := ValidateHours(hours); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(ctx, func(rec *Record) {
		rec.Settings.DailyWorkHours = hours
	})
}

// SetMonth overrides the value for a single month.
func (r *Resolver) SetMonth(ctx context.Context, month string, hours float64) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	if err := ValidateHours(hours); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(ctx, func(rec *Record) {
		rec.MonthlySettings[month] = MonthSettings{DailyWorkHours: hours}
	})
}

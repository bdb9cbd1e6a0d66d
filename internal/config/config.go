package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Suzii/attendance-tracker/internal/holiday"
	"github.com/Suzii/attendance-tracker/internal/storage"
)

type Config struct {
	// Storage
	DataDir    string
	Backend    string
	SQLitePath string

	// Domain
	HolidayCountry string
	Timezone       string

	// Logging
	LogLevel string
}

// DataDir returns the default data directory under homeDir.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".attendance")
}

// LoadEnvFiles reads .env from the working directory and from the data
// directory. Variables already set in the environment win.
func LoadEnvFiles(homeDir string) {
	_ = godotenv.Load()
	dir := getEnv("ATTENDANCE_DIR", DataDir(homeDir))
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err == nil {
		_ = godotenv.Load(path)
	}
}

// Load reads the configuration from the environment.
func Load(homeDir string) *Config {
	dir := getEnv("ATTENDANCE_DIR", DataDir(homeDir))
	return &Config{
		DataDir:        dir,
		Backend:        getEnv("ATTENDANCE_BACKEND", storage.BackendFile),
		SQLitePath:     getEnv("ATTENDANCE_SQLITE_PATH", filepath.Join(dir, "attendance.db")),
		HolidayCountry: strings.ToUpper(getEnv("ATTENDANCE_HOLIDAYS", "CZ")),
		Timezone:       getEnv("ATTENDANCE_TZ", "Local"),
		LogLevel:       strings.ToLower(getEnv("ATTENDANCE_LOG_LEVEL", "warn")),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if !slices.Contains(storage.Backends(), c.Backend) {
		errs = append(errs, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, storage.Backends()))
	}
	if c.Backend == storage.BackendFile && c.DataDir == "" {
		errs = append(errs, "data directory cannot be empty when using file backend")
	}
	if c.Backend == storage.BackendSQLite && c.SQLitePath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
	}

	if !slices.Contains(holiday.Countries(), c.HolidayCountry) {
		errs = append(errs, fmt.Sprintf("unsupported holiday country '%s': must be one of %v", c.HolidayCountry, holiday.Countries()))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// StorageOptions maps the configuration onto storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:    c.Backend,
		Dir:        c.DataDir,
		SQLitePath: c.SQLitePath,
	}
}

// Level returns the parsed log level, defaulting to warn.
func (c *Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

var errUnknownLevel = errors.New("invalid log level")

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("%w '%s': must be one of debug, info, warn, error", errUnknownLevel, s)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

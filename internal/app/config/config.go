package config

import (
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/utils"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// defaults apply when neither the .env file nor the environment sets a key.
// Keys without a default stay zero: an empty REDIS_ADDR disables Redis and
// rate limiting, an empty WATCH_DIR or BACKUP_DIR disables the watcher and
// scheduled backups.
var defaults = map[string]any{
	"LOG_LEVEL":           "info",
	"HTTP_PORT":           8080,
	"HTTP_TIMEOUT":        "30s",
	"STORE_DRIVER":        "memory",
	"STORE_SNAPSHOT_PATH": "data/flights.json",
	"SQLITE_PATH":         "data/flights.db",
	"REDIS_KEY_PREFIX":    "flight",
	"REDIS_TIMEOUT":       "3s",
	"IMPORT_RATE_LIMIT":   30,
	"OVERRIDE_CARRIERS":   "EMIRATES",
	"BACKUP_FORMAT":       "json",
}

// Config holds the application configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Store    Store      `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Import   Import     `mapstructure:",squash"`
	Watch    Watch      `mapstructure:",squash"`
	Backup   Backup     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Store selects the record store. Driver is memory, redis or sqlite.
type Store struct {
	Driver       string `mapstructure:"STORE_DRIVER"`
	SnapshotPath string `mapstructure:"STORE_SNAPSHOT_PATH"`
	SQLitePath   string `mapstructure:"SQLITE_PATH"`
}

type Redis struct {
	Addr      string        `mapstructure:"REDIS_ADDR"`
	Password  string        `mapstructure:"REDIS_PASSWORD"`
	DB        int           `mapstructure:"REDIS_DB"`
	KeyPrefix string        `mapstructure:"REDIS_KEY_PREFIX"`
	Timeout   time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type Import struct {
	// RateLimit is the number of HTTP imports allowed per client per minute.
	// Zero disables limiting.
	RateLimit        int    `mapstructure:"IMPORT_RATE_LIMIT"`
	OverrideCarriers string `mapstructure:"OVERRIDE_CARRIERS"`
	OverrideFile     string `mapstructure:"OVERRIDE_FILE"`
}

// Carriers returns the comma separated override carrier markers.
func (i Import) Carriers() []string {
	return utils.NonEmpty(utils.SplitAndTrim(i.OverrideCarriers, ","))
}

type Watch struct {
	Dir string `mapstructure:"WATCH_DIR"`
}

type Backup struct {
	Dir      string        `mapstructure:"BACKUP_DIR"`
	Interval time.Duration `mapstructure:"BACKUP_INTERVAL"`
	Format   string        `mapstructure:"BACKUP_FORMAT"`
}

// Enabled reports whether scheduled backups are configured.
func (b Backup) Enabled() bool {
	return b.Dir != "" && b.Interval > 0
}

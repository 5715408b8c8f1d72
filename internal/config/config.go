// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// State backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config is every setting the CLI reads
type Config struct {
	DataDirs []string `env:"SHEET_DATA_DIRS" envSeparator:"," envDefault:"./data"`

	RemoteEnabled  bool          `env:"SHEET_REMOTE_ENABLED" envDefault:"true"`
	RemoteBaseURL  string        `env:"SHEET_REMOTE_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	RemoteTimeout  time.Duration `env:"SHEET_REMOTE_TIMEOUT" envDefault:"7s"`
	RemoteCacheTTL time.Duration `env:"SHEET_REMOTE_CACHE_TTL" envDefault:"24h"`

	StateBackend string `env:"SHEET_STATE_BACKEND" envDefault:"sqlite"`
	SQLitePath   string `env:"SHEET_SQLITE_PATH" envDefault:"sheet-state.db"`
	RedisAddr    string `env:"SHEET_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB      int    `env:"SHEET_REDIS_DB" envDefault:"0"`

	DiceTTL  time.Duration `env:"SHEET_DICE_TTL" envDefault:"15m"`
	LogLevel string        `env:"SHEET_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file, then the environment. Variables
// already set win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file loaded", "files", envFiles, "error", err)
	}
	return Parse()
}

// Parse reads the environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.StateBackend = strings.ToLower(strings.TrimSpace(cfg.StateBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if len(c.DataDirs) == 0 {
		vb.RequiredField("DataDirs")
	}
	switch c.StateBackend {
	case BackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	case BackendRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	default:
		vb.InvalidField("StateBackend", "must be sqlite or redis")
	}
	if c.RemoteEnabled {
		errors.ValidateRequired("RemoteBaseURL", c.RemoteBaseURL, vb)
		if c.RemoteTimeout <= 0 {
			vb.InvalidField("RemoteTimeout", "must be positive")
		}
	}
	if c.DiceTTL <= 0 {
		vb.InvalidField("DiceTTL", "must be positive")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("LogLevel", "must be debug, info, warn or error")
	}
	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// NewLogger builds the text logger the CLI installs as default
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.SlogLevel()}))
}

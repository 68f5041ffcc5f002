// Package config loads periodical's runtime configuration.
//
// Values come from environment variables prefixed with PERIODICAL_, after an
// optional `.env` file in the working directory has been loaded into the
// process environment. Underscores after the prefix become nesting:
//
//	PERIODICAL_DATABASE_PATH -> database.path -> Config.Database.Path
//	PERIODICAL_LOG_LEVEL     -> log.level     -> Config.Log.Level
//
// Unset keys keep the defaults from Default.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "PERIODICAL_"

// DefaultDatabasePath is the database file used when none is configured.
const DefaultDatabasePath = "./database/magazine.db"

// Config is the root configuration object.
type Config struct {
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=console json"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: DefaultDatabasePath},
		Log:      LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration from the process environment and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// envKey maps PERIODICAL_DATABASE_PATH to database.path.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

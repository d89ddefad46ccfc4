// Package config loads kairos settings.
//
// Source priority (highest to lowest):
//  1. KAIROS_* environment variables
//  2. the YAML file at $KAIROS_CONFIG, or ~/.config/kairos/config.yaml
//  3. DefaultConfig
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/luanbartole/kairos/internal/domain"
	"gopkg.in/yaml.v3"
)

// StoreKind selects the session store backend.
type StoreKind string

const (
	StoreJSON   StoreKind = "json"
	StoreSQLite StoreKind = "sqlite"
)

const (
	CurrentSessionFile = "current_session.json"
	SessionLogFile     = "sessions.json"
	DatabaseFile       = "kairos.db"
)

// Config holds all kairos settings.
type Config struct {
	// DataDir holds the session files. Defaults to the working directory.
	DataDir      string              `yaml:"data_dir"`
	Store        StoreKind           `yaml:"store"`
	DefaultTag   string              `yaml:"default_tag"`
	ExportFormat domain.ExportFormat `yaml:"export_format"`
	LogCalls     bool                `yaml:"log_calls"`
}

// DefaultConfig returns a Config that keeps JSON session files in the
// working directory.
func DefaultConfig() Config {
	return Config{
		DataDir:      ".",
		Store:        StoreJSON,
		DefaultTag:   domain.DefaultTag,
		ExportFormat: domain.ExportJSON,
	}
}

// Load reads the config file (if any) and applies environment overrides.
// A missing file is not an error; an unparseable one is.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path := filePath()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects unknown store backends and export formats.
func (c Config) Validate() error {
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("invalid store %q (want json or sqlite)", c.Store)
	}
	if _, err := domain.ParseExportFormat(string(c.ExportFormat)); err != nil {
		return fmt.Errorf("invalid export_format: %w", err)
	}
	return nil
}

// CurrentSessionPath is the current-session record for the JSON store.
func (c Config) CurrentSessionPath() string {
	return filepath.Join(c.DataDir, CurrentSessionFile)
}

// SessionLogPath is the completed-session log for the JSON store.
func (c Config) SessionLogPath() string {
	return filepath.Join(c.DataDir, SessionLogFile)
}

// DatabasePath is the SQLite file used when Store is StoreSQLite.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

func filePath() string {
	if v := os.Getenv("KAIROS_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kairos", "config.yaml")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KAIROS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("KAIROS_STORE"); v != "" {
		cfg.Store = StoreKind(v)
	}
	if v := os.Getenv("KAIROS_DEFAULT_TAG"); v != "" {
		cfg.DefaultTag = v
	}
	if v := os.Getenv("KAIROS_EXPORT_FORMAT"); v != "" {
		cfg.ExportFormat = domain.ExportFormat(v)
	}
	if v := os.Getenv("KAIROS_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
}

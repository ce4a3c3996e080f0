// Package config handles the configuration directory and settings file.
//
// Settings are resolved in priority order:
//  1. Built-in defaults
//  2. config.toml in the configuration directory
//  3. Environment variables (TODO_*)
//  4. CLI flags (applied by the dispatcher)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// SettingsFile is the settings filename inside the config directory.
	SettingsFile = "config.toml"
)

// Default values.
const (
	DefaultOutputFormat  = "text"
	DefaultConfirmDelete = true
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// Debug enables debug logging.
	Debug bool `toml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"-"`

	// OutputFormat selects how the task list is printed: text, json or yaml.
	OutputFormat string `toml:"output_format"`

	// ConfirmDelete asks before deleting a task from the menu.
	ConfirmDelete bool `toml:"confirm_delete"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// New creates a Config with defaults and the default or specified config
// directory. If configDir is empty, uses XDG_CONFIG_HOME/todo or
// $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	setDefaults(cfg)
	return cfg, nil
}

// Load creates a Config and applies the settings file and environment on
// top of the defaults. A missing settings file is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if cfg.HasSettings() {
		if _, err := toml.DecodeFile(cfg.SettingsPath(), cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", cfg.SettingsPath(), err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.OutputFormat = DefaultOutputFormat
	cfg.ConfirmDelete = DefaultConfirmDelete
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// HasSettings checks if the settings file exists.
func (c *Config) HasSettings() bool {
	_, err := os.Stat(c.SettingsPath())
	return err == nil
}

// ErrInvalidSetting is returned by Validate for unknown setting values.
var ErrInvalidSetting = errors.New("invalid setting")

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: output_format %q (want text, json or yaml)", ErrInvalidSetting, c.OutputFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalidSetting, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: log_format %q (want text, json or logfmt)", ErrInvalidSetting, c.LogFormat)
	}
	return nil
}

// loadFromEnv overrides settings from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("TODO_CONFIRM_DELETE"); v != "" {
		cfg.ConfirmDelete = boolFromString(v)
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("TODO_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

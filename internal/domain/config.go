package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigTemplate returns the commented config file written by `config init`.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	Log      LogConfig   `toml:"log"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Path   string      `toml:"path"`   // Backing file; relative paths resolve against the working directory
	Format StoreFormat `toml:"format"` // "json" (default) or "yaml"
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"`          // debug, info, warn, error
	File  string `toml:"file,omitempty"` // Log file path (empty = no file logging)
}

// StoreFormat selects the serialization of the backing file.
type StoreFormat string

const (
	StoreFormatJSON StoreFormat = "json"
	StoreFormatYAML StoreFormat = "yaml"
)

// IsValid returns true if the format is supported.
func (f StoreFormat) IsValid() bool {
	return f == StoreFormatJSON || f == StoreFormatYAML
}

// Configuration errors.
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrConfigExists       = errors.New("config file already exists")
	ErrInvalidStoreFormat = errors.New("invalid store format")
	ErrEmptyStorePath     = errors.New("store path cannot be empty")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrEmptyStorePath)
	}
	if !c.Store.Format.IsValid() {
		return fmt.Errorf("%w: %w %q (must be %q or %q)", ErrInvalidConfig,
			ErrInvalidStoreFormat, c.Store.Format, StoreFormatJSON, StoreFormatYAML)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// File names and defaults.
const (
	AppName               = "task-cli"      // Used for directory and env prefixes
	ConfigFileName        = "config.toml"   // Global config file name
	ProjectConfigFileName = "task-cli.toml" // Config file name in the working directory
	EnvFileName           = ".env"          // Optional dotenv file in the working directory
	DefaultStorePath      = "tasks.json"    // Backing file in the working directory
	DefaultYAMLStorePath  = "tasks.yaml"    // Backing file when store.format is yaml
	DefaultLogLevel       = "warn"
)

// Environment variables that override file configuration.
const (
	EnvStorePath   = "TASK_CLI_STORE_PATH"
	EnvStoreFormat = "TASK_CLI_STORE_FORMAT"
	EnvLogLevel    = "TASK_CLI_LOG_LEVEL"
	EnvLogFile     = "TASK_CLI_LOG_FILE"
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the config path inside a working directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// ResolvePath makes a relative store or log path absolute against dir.
func ResolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills every unset field.
// The default store path follows the store format.
func (c *Config) ApplyDefaults() {
	if c.Store.Format == "" {
		c.Store.Format = StoreFormatJSON
	}
	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath
		if c.Store.Format == StoreFormatYAML {
			c.Store.Path = DefaultYAMLStorePath
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

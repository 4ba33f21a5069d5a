// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/task-cli/internal/domain"
)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	projectDir    string // Working directory holding task-cli.toml and .env
	globalConfDir string // Path to global config directory (e.g., ~/.config/task-cli)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Precedence, lowest first: defaults, global file, project file, .env, environment.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := &domain.Config{}
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	env, err := l.loadEnv()
	if err != nil {
		return nil, err
	}
	base = mergeConfigs(base, env)

	base.ApplyDefaults()
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the configuration in the working directory.
func (l *Loader) LoadProject() (*domain.Config, error) {
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// loadEnv reads overrides from the process environment, falling back to the
// .env file in the working directory. Real environment variables win.
func (l *Loader) loadEnv() (*domain.Config, error) {
	dotenv, err := godotenv.Read(filepath.Join(l.projectDir, domain.EnvFileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, domain.EnvFileName, err)
		}
		dotenv = nil
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	return &domain.Config{
		Store: domain.StoreConfig{
			Path:   lookup(domain.EnvStorePath),
			Format: domain.StoreFormat(lookup(domain.EnvStoreFormat)),
		},
		Log: domain.LogConfig{
			Level: lookup(domain.EnvLogLevel),
			File:  lookup(domain.EnvLogFile),
		},
	}, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	stringValue := func(section, key string, v any) string {
		s, ok := v.(string)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid value in [%s]: %s must be a string", section, key))
		}
		return s
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		switch section {
		case "store", "log":
			if !ok {
				warnings = append(warnings, fmt.Sprintf("invalid section: %s must be a table", section))
				continue
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}

		for k, v := range m {
			switch section + "." + k {
			case "store.path":
				res.Store.Path = stringValue(section, k, v)
			case "store.format":
				res.Store.Format = domain.StoreFormat(stringValue(section, k, v))
			case "log.level":
				res.Log.Level = stringValue(section, k, v)
			case "log.file":
				res.Log.File = stringValue(section, k, v)
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store:    base.Store,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Store.Format != "" {
		result.Store.Format = override.Store.Format
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}

	return result
}

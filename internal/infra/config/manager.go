package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/task-cli/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Working directory holding task-cli.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/task-cli)
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// GetProjectConfigInfo returns information about the working-directory config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return getConfigInfo(domain.ProjectConfigPath(m.projectDir))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig creates task-cli.toml in the working directory.
func (m *Manager) InitProjectConfig() error {
	return initConfig(domain.ProjectConfigPath(m.projectDir))
}

// InitGlobalConfig creates the global config file.
func (m *Manager) InitGlobalConfig() error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// initConfig writes the template unless the file already exists.
func initConfig(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
		}
		return fmt.Errorf("create config file: %w", err)
	}

	if _, err := f.WriteString(domain.ConfigTemplate()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config file: %w", err)
	}
	return f.Close()
}

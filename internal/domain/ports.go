package domain

import "time"

// TaskRepository persists the whole task collection.
// Every command loads the full collection, mutates it and saves it back.
type TaskRepository interface {
	// Load reads the collection. A missing backing file yields an empty
	// collection. Unreadable content is recovered as an empty collection
	// rather than returned as an error.
	Load() (*Collection, error)

	// Save replaces the backing file with the full collection.
	Save(c *Collection) error

	// Path returns the backing file location.
	Path() string
}

// Logger records diagnostic messages.
// taskID 0 means the message is not tied to a task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string // File path (empty if the location is unknown)
	Content string // File content (empty if it does not exist)
	Exists  bool   // Whether the file exists
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the working-directory config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig writes the config template to the working directory.
	// Returns ErrConfigExists if the file is already present.
	InitProjectConfig() error

	// InitGlobalConfig writes the config template to the global config directory.
	// Returns ErrConfigExists if the file is already present.
	InitGlobalConfig() error
}

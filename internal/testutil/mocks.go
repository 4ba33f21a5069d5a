// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/task-cli/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Load hands out a copy so that mutations are only visible after Save.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Collection *domain.Collection
	LoadErr    error
	SaveErr    error
	FilePath   string
	LoadCalls  int
	SaveCalls  int
}

// NewMockTaskRepository creates a repository holding the given tasks.
func NewMockTaskRepository(tasks ...*domain.Task) *MockTaskRepository {
	return &MockTaskRepository{
		Collection: domain.NewCollection(tasks...),
		FilePath:   "tasks.json",
	}
}

// Load returns a copy of the stored collection.
func (m *MockTaskRepository) Load() (*domain.Collection, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneCollection(m.Collection), nil
}

// Save stores a copy of c.
func (m *MockTaskRepository) Save(c *domain.Collection) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Collection = cloneCollection(c)
	return nil
}

// Path returns the configured file path.
func (m *MockTaskRepository) Path() string {
	return m.FilePath
}

// Task returns the stored task with the given ID, or nil.
func (m *MockTaskRepository) Task(id int) *domain.Task {
	task, _ := m.Collection.Find(id)
	return task
}

func cloneCollection(c *domain.Collection) *domain.Collection {
	tasks := make([]*domain.Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		copied := *t
		tasks = append(tasks, &copied)
	}
	return domain.NewCollection(tasks...)
}

// Ensure MockTaskRepository implements domain.TaskRepository.
var _ domain.TaskRepository = (*MockTaskRepository)(nil)

// LogEntry is a single message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// MockLogger is a test double for domain.Logger that records every call.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{
		Level:    level,
		Category: category,
		Msg:      msg,
		TaskID:   taskID,
	})
}

// Debug records a debug message.
func (m *MockLogger) Debug(taskID int, category, msg string) {
	m.record("debug", taskID, category, msg)
}

// Info records an info message.
func (m *MockLogger) Info(taskID int, category, msg string) {
	m.record("info", taskID, category, msg)
}

// Warn records a warning.
func (m *MockLogger) Warn(taskID int, category, msg string) {
	m.record("warn", taskID, category, msg)
}

// Error records an error.
func (m *MockLogger) Error(taskID int, category, msg string) {
	m.record("error", taskID, category, msg)
}

// ByLevel returns the recorded entries of the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// String formats the entries for assertion messages.
func (m *MockLogger) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("%+v", m.Entries)
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns the configured error.
func (m *MockConfigManager) InitProjectConfig() error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

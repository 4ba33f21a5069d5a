// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/infra/config"
	"github.com/runoshun/task-cli/internal/infra/jsonstore"
	"github.com/runoshun/task-cli/internal/infra/logging"
	"github.com/runoshun/task-cli/internal/infra/yamlstore"
	"github.com/runoshun/task-cli/internal/usecase"
)

// Config holds the resolved paths for one invocation.
type Config struct {
	WorkDir   string // Directory the command runs in
	StorePath string // Absolute path of the task file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	closer    func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Configuration errors are returned; a missing or unreadable task file is not.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logFile := appConfig.Log.File
	if logFile != "" {
		logFile = domain.ResolvePath(dir, logFile)
	}
	logger, err := logging.New(logging.Options{
		Level: appConfig.Log.Level,
		File:  logFile,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg := Config{
		WorkDir:   dir,
		StorePath: domain.ResolvePath(dir, appConfig.Store.Path),
	}

	return &Container{
		Tasks:         newTaskRepository(appConfig.Store.Format, cfg.StorePath, logger),
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigManager: config.NewManager(dir),
		AppConfig:     appConfig,
		closer:        logger.Close,
		Config:        cfg,
	}, nil
}

// newTaskRepository selects the store implementation for the configured format.
func newTaskRepository(format domain.StoreFormat, path string, logger domain.Logger) domain.TaskRepository {
	if format == domain.StoreFormatYAML {
		return yamlstore.New(path, logger)
	}
	return jsonstore.New(path, logger)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Clock, c.Logger)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Tasks, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig, c.Tasks)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

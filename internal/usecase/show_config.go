package usecase

import (
	"context"

	"github.com/runoshun/task-cli/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective     *domain.Config    // Merged configuration in use
	GlobalConfig  domain.ConfigInfo // Global config file info
	ProjectConfig domain.ConfigInfo // Working-directory config file info
	StorePath     string            // Resolved task file path
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	effective     *domain.Config
	tasks         domain.TaskRepository
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, effective *domain.Config, tasks domain.TaskRepository) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		effective:     effective,
		tasks:         tasks,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	return &ShowConfigOutput{
		Effective:     uc.effective,
		GlobalConfig:  uc.configManager.GetGlobalConfigInfo(),
		ProjectConfig: uc.configManager.GetProjectConfigInfo(),
		StorePath:     uc.tasks.Path(),
	}, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/task-cli/internal/domain"
)

// UpdateTaskInput contains the parameters for changing a task description.
type UpdateTaskInput struct {
	Description string // New description (required, trimmed before storing)
	TaskID      int    // Task ID to update
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct {
	Task *domain.Task // The updated task
}

// UpdateTask is the use case for changing a task description.
type UpdateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute replaces the description and refreshes updatedAt.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	c, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task, _ := c.Find(in.TaskID)
	if task == nil {
		return nil, domain.TaskNotFound(in.TaskID)
	}

	task.SetDescription(description, uc.clock.Now())

	if err := uc.tasks.Save(c); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("description updated: %q", description))
	}

	return &UpdateTaskOutput{Task: task}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task permanently. Its ID is not handed out again
// while a higher ID exists.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	c, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task := c.Remove(in.TaskID)
	if task == nil {
		return nil, domain.TaskNotFound(in.TaskID)
	}

	if err := uc.tasks.Save(c); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "deleted")
	}

	return &DeleteTaskOutput{Task: task}, nil
}

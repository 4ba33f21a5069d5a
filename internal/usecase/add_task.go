// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/task-cli/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Description string // Task description (required, trimmed before storing)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new todo task with the next free ID.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	c, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task := domain.NewTask(c.NextID(), description, uc.clock.Now())
	c.Add(task)

	if err := uc.tasks.Save(c); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("created: %q", description))
	}

	return &AddTaskOutput{Task: task}, nil
}

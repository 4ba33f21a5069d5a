package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// SetStatusInput contains the parameters for changing a task status.
type SetStatusInput struct {
	Status domain.Status // New status
	TaskID int           // Task ID to update
}

// SetStatusOutput contains the result of a status change.
type SetStatusOutput struct {
	Task      *domain.Task  // The updated task
	OldStatus domain.Status // Status before the change
}

// SetStatus is the use case behind the mark-* commands.
// The new status is written unconditionally; repeating a status still
// refreshes updatedAt.
type SetStatus struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *SetStatus {
	return &SetStatus{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute overwrites the status of the task.
func (uc *SetStatus) Execute(_ context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.InvalidStatus(string(in.Status))
	}

	c, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task, _ := c.Find(in.TaskID)
	if task == nil {
		return nil, domain.TaskNotFound(in.TaskID)
	}

	oldStatus := task.Status
	task.SetStatus(in.Status, uc.clock.Now())

	if err := uc.tasks.Save(c); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("status changed: %s -> %s", oldStatus, in.Status))
	}

	return &SetStatusOutput{Task: task, OldStatus: oldStatus}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/task-cli/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status domain.Status // Filter by status (empty = all tasks)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Matching tasks in creation order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns the tasks matching the filter. It never writes the store.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != "" && !in.Status.IsValid() {
		return nil, domain.InvalidStatus(string(in.Status))
	}

	c, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: c.WithStatus(in.Status)}, nil
}

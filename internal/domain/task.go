// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single trackable unit of work.
// Fields are ordered to match the persisted layout.
type Task struct {
	ID          int       `json:"id" yaml:"id"`                   // Unique positive ID
	Description string    `json:"description" yaml:"description"` // Description (required)
	Status      Status    `json:"status" yaml:"status"`           // Current status
	CreatedAt   Timestamp `json:"createdAt" yaml:"createdAt"`     // Creation time, immutable
	UpdatedAt   Timestamp `json:"updatedAt" yaml:"updatedAt"`     // Last mutation time
}

// NewTask creates a todo task with both timestamps set to now.
func NewTask(id int, description string, now time.Time) *Task {
	ts := NewTimestamp(now)
	return &Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// SetDescription replaces the description and bumps UpdatedAt.
func (t *Task) SetDescription(description string, now time.Time) {
	t.Description = description
	t.UpdatedAt = NewTimestamp(now)
}

// SetStatus overwrites the status and bumps UpdatedAt.
// There is no transition guard: setting the current status again still
// refreshes UpdatedAt.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	t.UpdatedAt = NewTimestamp(now)
}

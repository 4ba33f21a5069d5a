package domain

import "fmt"

// Collection is the ordered set of tasks loaded from and saved to the store.
// Order is insertion order and never changes on update.
type Collection struct {
	Tasks []*Task
}

// NewCollection creates a collection holding tasks in the given order.
func NewCollection(tasks ...*Task) *Collection {
	if tasks == nil {
		tasks = []*Task{}
	}
	return &Collection{Tasks: tasks}
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.Tasks)
}

// NextID returns 1 + the highest existing ID, or 1 when empty.
// IDs freed by deletion are never handed out again as long as a higher ID exists.
func (c *Collection) NextID() int {
	maxID := 0
	for _, t := range c.Tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Find returns the task with the given ID and its position, or (nil, -1).
func (c *Collection) Find(id int) (*Task, int) {
	for i, t := range c.Tasks {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}

// Add appends a task.
func (c *Collection) Add(task *Task) {
	c.Tasks = append(c.Tasks, task)
}

// Remove deletes the task with the given ID and returns it, or nil if absent.
func (c *Collection) Remove(id int) *Task {
	task, idx := c.Find(id)
	if task == nil {
		return nil
	}
	c.Tasks = append(c.Tasks[:idx], c.Tasks[idx+1:]...)
	return task
}

// WithStatus returns the tasks in collection order whose status matches.
// An empty status matches every task.
func (c *Collection) WithStatus(status Status) []*Task {
	result := make([]*Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		if status == "" || t.Status == status {
			result = append(result, t)
		}
	}
	return result
}

// Validate checks the ID invariants: every ID positive and unique.
func (c *Collection) Validate() error {
	seen := make(map[int]bool, len(c.Tasks))
	for i, t := range c.Tasks {
		if t == nil {
			return fmt.Errorf("tasks[%d]: %w", i, ErrInvalidID)
		}
		if t.ID <= 0 {
			return fmt.Errorf("tasks[%d]: %w", i, ErrInvalidID)
		}
		if seen[t.ID] {
			return fmt.Errorf("tasks[%d]: %w: %d", i, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

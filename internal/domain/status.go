package domain

import "strings"

// Status represents the workflow state of a task.
type Status string

const (
	StatusTodo       Status = "todo"        // Created, not started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusDone       Status = "done"        // Finished
)

// AllStatuses returns all valid status values in workflow order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusDone,
	}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus normalizes user input (surrounding spaces, letter case) and
// returns the matching status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", InvalidStatus(s)
	}
	return status, nil
}

// statusNames returns the valid status values joined by sep.
func statusNames(sep string) string {
	names := make([]string, 0, len(AllStatuses()))
	for _, s := range AllStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, sep)
}

// StatusChoices returns the valid values formatted for usage text, e.g. "todo|in-progress|done".
func StatusChoices() string {
	return statusNames("|")
}

package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every domain error matches exactly one of these with errors.Is.
var (
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrUsage          = errors.New("usage error")
	ErrMalformedStore = errors.New("malformed task store")
)

// Error is a domain error tagged with a category.
// Fields are ordered to minimize memory padding.
type Error struct {
	Kind    error  // Category sentinel or a more specific domain error
	Err     error  // Underlying cause (optional)
	Message string // User-facing message
}

// NewError builds a domain error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError builds a domain error of the given kind around a cause.
func WrapError(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Domain errors.
var (
	ErrEmptyDescription = NewError(ErrValidation, "description cannot be empty")
	ErrInvalidStatus    = NewError(ErrValidation, "invalid status")
	ErrTaskNotFound     = NewError(ErrNotFound, "task not found")
	ErrDuplicateID      = NewError(ErrMalformedStore, "duplicate task ID")
	ErrInvalidID        = NewError(ErrMalformedStore, "task ID must be positive")
)

// TaskNotFound returns an error naming the missing task.
// It matches both ErrTaskNotFound and ErrNotFound.
func TaskNotFound(id int) error {
	return NewError(ErrTaskNotFound, fmt.Sprintf("task with ID %d not found", id))
}

// InvalidStatus returns an error naming the rejected status value.
func InvalidStatus(value string) error {
	return NewError(ErrInvalidStatus,
		fmt.Sprintf("invalid status %q (must be one of: %s)", value, statusNames(", ")))
}

// MalformedStore returns an error describing unreadable store content.
func MalformedStore(path string, err error) error {
	return WrapError(ErrMalformedStore, fmt.Sprintf("unreadable task file %s", path), err)
}

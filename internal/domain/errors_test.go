package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Categories(t *testing.T) {
	categories := []error{ErrValidation, ErrNotFound, ErrUsage, ErrMalformedStore}

	tests := []struct {
		err  error
		want error
		name string
	}{
		{ErrEmptyDescription, ErrValidation, "empty description"},
		{InvalidStatus("x"), ErrValidation, "invalid status"},
		{TaskNotFound(4), ErrNotFound, "task not found"},
		{NewError(ErrUsage, "bad"), ErrUsage, "usage"},
		{MalformedStore("tasks.json", errors.New("eof")), ErrMalformedStore, "malformed store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, category := range categories {
				assert.Equal(t, category == tt.want, errors.Is(tt.err, category), category)
			}
		})
	}
}

func TestTaskNotFound(t *testing.T) {
	err := TaskNotFound(42)

	assert.EqualError(t, err, "task with ID 42 not found")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMalformedStore_WrapsCause(t *testing.T) {
	err := MalformedStore("/tmp/tasks.json", fs.ErrPermission)

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "unreadable task file /tmp/tasks.json: permission denied", err.Error())
}

func TestError_NoKind(t *testing.T) {
	err := &Error{Message: "plain"}

	assert.Empty(t, err.Unwrap())
	assert.EqualError(t, err, "plain")
}

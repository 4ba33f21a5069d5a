package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 10, 16, 18, 20, 5, 250_000_000, time.Local)

func TestNewTask(t *testing.T) {
	task := NewTask(3, "Buy groceries", testNow)

	assert.Equal(t, 3, task.ID)
	assert.Equal(t, "Buy groceries", task.Description)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, "2025-10-16T18:20:05", task.CreatedAt.String())
	assert.True(t, task.CreatedAt.Equal(task.UpdatedAt))
}

func TestTask_SetDescription(t *testing.T) {
	task := NewTask(1, "old", testNow)
	later := testNow.Add(time.Minute)

	task.SetDescription("new", later)

	assert.Equal(t, "new", task.Description)
	assert.Equal(t, "2025-10-16T18:20:05", task.CreatedAt.String())
	assert.Equal(t, "2025-10-16T18:21:05", task.UpdatedAt.String())
}

func TestTask_SetStatus(t *testing.T) {
	task := NewTask(1, "x", testNow)

	task.SetStatus(StatusDone, testNow.Add(time.Second))
	first := task.UpdatedAt
	task.SetStatus(StatusDone, testNow.Add(2*time.Second))

	assert.Equal(t, StatusDone, task.Status)
	assert.True(t, task.UpdatedAt.After(first), "setting the same status still bumps UpdatedAt")
}

func TestTask_SetStatusBackwards(t *testing.T) {
	task := NewTask(1, "x", testNow)
	task.SetStatus(StatusDone, testNow)

	task.SetStatus(StatusTodo, testNow)

	assert.Equal(t, StatusTodo, task.Status)
}

func TestTask_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewTask(1, "x", testNow))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"description": "x",
		"status": "todo",
		"createdAt": "2025-10-16T18:20:05",
		"updatedAt": "2025-10-16T18:20:05"
	}`, string(data))
}

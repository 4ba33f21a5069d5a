package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/testutil"
	"github.com/runoshun/task-cli/internal/usecase"
)

func TestUpdateTask_Execute(t *testing.T) {
	t.Run("replaces description and bumps updatedAt", func(t *testing.T) {
		original := newTask(1, "Buy groceries", domain.StatusInProgress)
		repo := testutil.NewMockTaskRepository(original)
		clock := &testutil.MockClock{NowTime: fixedNow}

		out, err := usecase.NewUpdateTask(repo, clock, &testutil.MockLogger{}).Execute(context.Background(), usecase.UpdateTaskInput{
			TaskID:      1,
			Description: " Buy groceries and cook dinner ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Buy groceries and cook dinner", out.Task.Description)

		saved := repo.Task(1)
		require.NotNil(t, saved)
		assert.Equal(t, "Buy groceries and cook dinner", saved.Description)
		assert.Equal(t, domain.StatusInProgress, saved.Status, "status is untouched")
		assert.True(t, saved.CreatedAt.Equal(original.CreatedAt), "createdAt is immutable")
		assert.True(t, saved.UpdatedAt.After(original.UpdatedAt))
		assert.Equal(t, 1, repo.SaveCalls)
	})

	t.Run("not found", func(t *testing.T) {
		repo := testutil.NewMockTaskRepository(newTask(1, "one", domain.StatusTodo))

		_, err := usecase.NewUpdateTask(repo, &testutil.MockClock{NowTime: fixedNow}, nil).Execute(context.Background(), usecase.UpdateTaskInput{
			TaskID:      7,
			Description: "x",
		})

		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "task with ID 7 not found")
		assert.Zero(t, repo.SaveCalls)
	})

	t.Run("empty description is rejected before lookup", func(t *testing.T) {
		repo := testutil.NewMockTaskRepository(newTask(1, "one", domain.StatusTodo))

		_, err := usecase.NewUpdateTask(repo, &testutil.MockClock{NowTime: fixedNow}, nil).Execute(context.Background(), usecase.UpdateTaskInput{
			TaskID:      99,
			Description: "  ",
		})

		assert.ErrorIs(t, err, domain.ErrEmptyDescription)
		assert.Zero(t, repo.LoadCalls)
		assert.Equal(t, "one", repo.Task(1).Description)
	})

	t.Run("clock moves second precision only", func(t *testing.T) {
		repo := testutil.NewMockTaskRepository(newTask(1, "one", domain.StatusTodo))
		clock := &testutil.MockClock{NowTime: fixedNow.Add(750 * time.Millisecond)}

		out, err := usecase.NewUpdateTask(repo, clock, nil).Execute(context.Background(), usecase.UpdateTaskInput{
			TaskID:      1,
			Description: "two",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-10-16T18:20:05", out.Task.UpdatedAt.String())
	})
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/infra/jsonstore"
	"github.com/runoshun/task-cli/internal/testutil"
)

var testNow = time.Date(2025, 10, 16, 18, 20, 5, 0, time.Local)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo domain.TaskRepository, clock *testutil.MockClock) *app.Container {
	if clock == nil {
		clock = &testutil.MockClock{NowTime: testNow}
	}
	return app.NewWithDeps(app.Config{}, repo, clock, &testutil.MockLogger{})
}

// runCommand executes the root command with args and returns stdout and the error.
func runCommand(c *app.Container, args ...string) (string, error) {
	root := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func seededRepo() *testutil.MockTaskRepository {
	first := domain.NewTask(1, "Buy groceries", testNow)
	second := domain.NewTask(2, "Cook dinner", testNow)
	second.SetStatus(domain.StatusInProgress, testNow.Add(time.Minute))
	third := domain.NewTask(3, "Wash dishes", testNow)
	third.SetStatus(domain.StatusDone, testNow.Add(2*time.Minute))
	return testutil.NewMockTaskRepository(first, second, third)
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestAddCommand(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo, nil)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"  Buy groceries  "})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Task added successfully (ID: 1)\n", buf.String())
	require.NotNil(t, repo.Task(1))
	assert.Equal(t, "Buy groceries", repo.Task(1).Description)
}

func TestAddCommand_ExtraArgsIgnored(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	out, err := runCommand(newTestContainer(repo, nil), "add", "first", "second")

	require.NoError(t, err)
	assert.Contains(t, out, "(ID: 1)")
	assert.Equal(t, "first", repo.Task(1).Description)
}

func TestAddCommand_MissingDescription(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	_, err := runCommand(newTestContainer(repo, nil), "add")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Contains(t, err.Error(), "missing description")
	assert.Contains(t, err.Error(), `Usage: task-cli add "<description>"`)
	assert.Zero(t, repo.LoadCalls)
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	_, err := runCommand(newTestContainer(repo, nil), "add", "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	assert.EqualError(t, err, "description cannot be empty")
	assert.Zero(t, repo.SaveCalls)
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestListCommand_All(t *testing.T) {
	out, err := runCommand(newTestContainer(seededRepo(), nil), "list")

	require.NoError(t, err)
	want := "ID   STATUS       UPDATED             DESCRIPTION\n" +
		"----------------------------------------------------------------------\n" +
		"1    todo         2025-10-16T18:20:05 Buy groceries\n" +
		"2    in-progress  2025-10-16T18:21:05 Cook dinner\n" +
		"3    done         2025-10-16T18:22:05 Wash dishes\n"
	assert.Equal(t, want, out)
}

func TestListCommand_Filter(t *testing.T) {
	tests := []struct {
		arg      string
		contains string
		excludes []string
	}{
		{"todo", "Buy groceries", []string{"Cook dinner", "Wash dishes"}},
		{"in-progress", "Cook dinner", []string{"Buy groceries", "Wash dishes"}},
		{" DONE ", "Wash dishes", []string{"Buy groceries", "Cook dinner"}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := runCommand(newTestContainer(seededRepo(), nil), "list", tt.arg)

			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestListCommand_Empty(t *testing.T) {
	out, err := runCommand(newTestContainer(testutil.NewMockTaskRepository(), nil), "list")

	require.NoError(t, err)
	assert.Equal(t, "No tasks found.\n", out)
}

func TestListCommand_InvalidFilter(t *testing.T) {
	repo := seededRepo()

	_, err := runCommand(newTestContainer(repo, nil), "list", "blocked")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Contains(t, err.Error(), "Usage: task-cli list [todo|in-progress|done]")
	assert.Zero(t, repo.LoadCalls)
}

// =============================================================================
// Update / Mark / Delete Command Tests
// =============================================================================

func TestUpdateCommand(t *testing.T) {
	repo := seededRepo()

	out, err := runCommand(newTestContainer(repo, nil), "update", "#2", "Cook dinner for four")

	require.NoError(t, err)
	assert.Equal(t, "Task 2 updated successfully.\n", out)
	assert.Equal(t, "Cook dinner for four", repo.Task(2).Description)
}

func TestUpdateCommand_MissingArgs(t *testing.T) {
	tests := []struct {
		args    []string
		missing string
	}{
		{[]string{"update"}, "missing <id> and description"},
		{[]string{"update", "1"}, "missing description"},
	}

	for _, tt := range tests {
		t.Run(tt.missing, func(t *testing.T) {
			_, err := runCommand(newTestContainer(seededRepo(), nil), tt.args...)

			assert.ErrorIs(t, err, domain.ErrUsage)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestIDCommands_InvalidID(t *testing.T) {
	for _, name := range []string{"mark-in-progress", "mark-done", "delete"} {
		t.Run(name, func(t *testing.T) {
			repo := seededRepo()

			_, err := runCommand(newTestContainer(repo, nil), name, "one")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUsage)
			assert.Contains(t, err.Error(), "<id> must be a number")
			assert.Contains(t, err.Error(), "Usage: task-cli "+name+" <id>")
			assert.Zero(t, repo.LoadCalls)
		})
	}
}

func TestMarkCommands(t *testing.T) {
	repo := seededRepo()
	container := newTestContainer(repo, nil)

	out, err := runCommand(container, "mark-in-progress", "1")
	require.NoError(t, err)
	assert.Equal(t, "Task 1 marked as in-progress.\n", out)
	assert.Equal(t, domain.StatusInProgress, repo.Task(1).Status)

	out, err = runCommand(container, "mark-done", "1")
	require.NoError(t, err)
	assert.Equal(t, "Task 1 marked as done.\n", out)
	assert.Equal(t, domain.StatusDone, repo.Task(1).Status)
}

func TestMarkCommands_NoTodoCommand(t *testing.T) {
	root := NewRootCommand(newTestContainer(seededRepo(), nil), "test")

	cmd, _, err := root.Find([]string{"mark-todo"})

	require.NoError(t, err)
	assert.Same(t, root, cmd)
}

func TestDeleteCommand(t *testing.T) {
	repo := seededRepo()

	out, err := runCommand(newTestContainer(repo, nil), "delete", "2")

	require.NoError(t, err)
	assert.Equal(t, "Task 2 deleted successfully.\n", out)
	assert.Nil(t, repo.Task(2))
	assert.Equal(t, 2, repo.Collection.Len())
}

func TestDeleteCommand_NotFound(t *testing.T) {
	repo := seededRepo()

	_, err := runCommand(newTestContainer(repo, nil), "delete", "9")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "task with ID 9 not found")
	assert.Zero(t, repo.SaveCalls)
}

// =============================================================================
// Scenarios against a real task file
// =============================================================================

type scenario struct {
	t         *testing.T
	container *app.Container
	clock     *testutil.MockClock
	path      string
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	clock := &testutil.MockClock{NowTime: testNow}
	logger := &testutil.MockLogger{}
	container := app.NewWithDeps(app.Config{StorePath: path}, jsonstore.New(path, logger), clock, logger)
	return &scenario{t: t, container: container, clock: clock, path: path}
}

func (s *scenario) run(args ...string) (string, error) {
	s.t.Helper()
	s.clock.Advance(time.Second)
	return runCommand(s.container, args...)
}

func (s *scenario) mustRun(args ...string) string {
	s.t.Helper()
	out, err := s.run(args...)
	require.NoError(s.t, err)
	return out
}

func (s *scenario) load() *domain.Collection {
	s.t.Helper()
	c, err := s.container.Tasks.Load()
	require.NoError(s.t, err)
	return c
}

func (s *scenario) fileContent() string {
	s.t.Helper()
	content, err := os.ReadFile(s.path)
	require.NoError(s.t, err)
	return string(content)
}

func TestScenarios(t *testing.T) {
	s := newScenario(t)

	// A: add to an empty store, then list
	assert.Equal(t, "Task added successfully (ID: 1)\n", s.mustRun("add", "Buy groceries"))
	out := s.mustRun("list")
	assert.Contains(t, out, "1    todo")
	assert.Contains(t, out, "Buy groceries")
	require.Equal(t, 1, s.load().Len())

	// B: mark in progress and filter
	assert.Equal(t, "Task 1 marked as in-progress.\n", s.mustRun("mark-in-progress", "1"))
	assert.Equal(t, "No tasks found.\n", s.mustRun("list", "done"))
	out = s.mustRun("list", "in-progress")
	assert.Contains(t, out, "1    in-progress")

	// C: update keeps createdAt and advances updatedAt
	before := s.load().Tasks[0]
	assert.Equal(t, "Task 1 updated successfully.\n", s.mustRun("update", "1", "Buy groceries and cook dinner"))
	after := s.load().Tasks[0]
	assert.Equal(t, "Buy groceries and cook dinner", after.Description)
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	// D: done, delete, empty list, delete again fails
	assert.Equal(t, "Task 1 marked as done.\n", s.mustRun("mark-done", "1"))
	assert.Equal(t, "Task 1 deleted successfully.\n", s.mustRun("delete", "1"))
	assert.Equal(t, "No tasks found.\n", s.mustRun("list"))
	content := s.fileContent()
	_, err := s.run("delete", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, content, s.fileContent())
}

func TestScenarioE_EmptyDescription(t *testing.T) {
	s := newScenario(t)

	_, err := s.run("add", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = s.run("add", "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, statErr := os.Stat(s.path)
	assert.True(t, os.IsNotExist(statErr), "failed add must not create the file")

	assert.Equal(t, "Task added successfully (ID: 1)\n", s.mustRun("add", "Real task"))
}

func TestScenario_DoneTwiceBumpsUpdatedAt(t *testing.T) {
	s := newScenario(t)
	s.mustRun("add", "x")

	s.mustRun("mark-done", "1")
	first := s.load().Tasks[0].UpdatedAt
	s.mustRun("mark-done", "1")
	second := s.load().Tasks[0]

	assert.Equal(t, domain.StatusDone, second.Status)
	assert.True(t, second.UpdatedAt.After(first))
}

func TestScenario_NotFoundLeavesFileUnchanged(t *testing.T) {
	s := newScenario(t)
	s.mustRun("add", "keep me")
	content := s.fileContent()

	for _, args := range [][]string{
		{"update", "5", "x"},
		{"mark-in-progress", "5"},
		{"mark-done", "5"},
		{"delete", "5"},
	} {
		_, err := s.run(args...)
		assert.ErrorIs(t, err, domain.ErrNotFound, args)
		assert.Equal(t, content, s.fileContent(), args)
	}
}

func TestScenario_CorruptFileRecovered(t *testing.T) {
	s := newScenario(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o644))

	assert.Equal(t, "No tasks found.\n", s.mustRun("list"))
	assert.Equal(t, "Task added successfully (ID: 1)\n", s.mustRun("add", "fresh start"))
	assert.Equal(t, 1, s.load().Len())
}

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
)

// =============================================================================
// Root Command Tests
// =============================================================================

func TestRootCommand_UnknownCommand(t *testing.T) {
	_, err := runCommand(newTestContainer(seededRepo(), nil), "frobnicate")

	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Contains(t, err.Error(), "unknown command: frobnicate")
}

func TestRootCommand_UnknownFlag(t *testing.T) {
	_, err := runCommand(newTestContainer(seededRepo(), nil), "list", "--sort")

	assert.ErrorIs(t, err, domain.ErrUsage)
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	container := newTestContainer(seededRepo(), nil)
	container.AppConfig.Warnings = []string{"unknown key in [store]: locking"}

	root := NewRootCommand(container, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Warning: unknown key in [store]: locking\n", errOut.String())
}

func TestRootCommand_Groups(t *testing.T) {
	root := NewRootCommand(newTestContainer(seededRepo(), nil), "test")

	grouped := map[string][]string{}
	for _, cmd := range root.Commands() {
		if cmd.GroupID != "" {
			grouped[cmd.GroupID] = append(grouped[cmd.GroupID], cmd.Name())
		}
	}

	assert.ElementsMatch(t, []string{"add", "list", "update", "mark-in-progress", "mark-done", "delete", "tui"}, grouped[groupTask])
	assert.ElementsMatch(t, []string{"config"}, grouped[groupSetup])
}

func TestRootCommand_NoArgsShowsHelp(t *testing.T) {
	out, err := runCommand(newTestContainer(seededRepo(), nil))

	require.NoError(t, err)
	assert.Contains(t, out, "Task Management:")
	assert.Contains(t, out, "mark-in-progress")
}

func TestTUICommand_LaunchesBrowser(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	container := newTestContainer(seededRepo(), nil)
	var got *app.Container
	launchTUIFunc = func(c *app.Container) error {
		got = c
		return nil
	}

	_, err := runCommand(container, "tui")

	require.NoError(t, err)
	assert.Same(t, container, got)
}

func TestTUICommand_PropagatesError(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	launchTUIFunc = func(*app.Container) error {
		return errors.New("no terminal")
	}

	_, err := runCommand(newTestContainer(seededRepo(), nil), "tui")

	assert.EqualError(t, err, "no terminal")
}

// Package cli provides the command-line interface for task-cli.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// NewRootCommand creates the root command for task-cli.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   domain.AppName,
		Short: "Track tasks from the command line",
		Long: `task-cli keeps a list of short tasks in a local file.

Tasks move through the statuses todo, in-progress and done.
The task file is tasks.json in the current directory unless configured
otherwise (see 'task-cli config template').`,
		Example: `  task-cli add "Buy groceries"
  task-cli list
  task-cli list done
  task-cli update 1 "Buy groceries and cook dinner"
  task-cli mark-in-progress 1
  task-cli mark-done 1
  task-cli delete 1
  task-cli tui`,
		Version: version,
		// Unknown subcommands reach RunE instead of cobra's own suggestion error
		Args: cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. configuration could not be loaded)
			if c == nil || c.AppConfig == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf(cmd, "unknown command: %s (try '%s help')", args[0], domain.AppName)
			}
			return cmd.Help()
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf(cmd, "%v", err)
	})

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	updateCmd := newUpdateCommand(c)
	updateCmd.GroupID = groupTask

	markInProgressCmd := newMarkCommand(c, domain.StatusInProgress)
	markInProgressCmd.GroupID = groupTask

	markDoneCmd := newMarkCommand(c, domain.StatusDone)
	markDoneCmd.GroupID = groupTask

	deleteCmd := newDeleteCommand(c)
	deleteCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Add subcommands
	root.AddCommand(
		addCmd,
		listCmd,
		updateCmd,
		markInProgressCmd,
		markDoneCmd,
		deleteCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

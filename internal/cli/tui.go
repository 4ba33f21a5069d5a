package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/tui"
)

// launchTUIFunc starts the interactive browser. Tests replace it.
var launchTUIFunc = tui.Run

// newTUICommand creates the tui command for browsing tasks interactively.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit tasks interactively",
		Long: `Launch the interactive terminal user interface.

The list reads and writes the same task file as the other commands.
Press ? inside the interface for key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   `add "<description>"`,
		Short: "Add a new task",
		Long: `Add a new task with status 'todo'.

The task receives the next free ID (one more than the highest existing ID).
Surrounding whitespace is removed from the description.`,
		Example: `  task-cli add "Buy groceries"`,
		Args:    requireArgs(1, "description"),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Description: args[0],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (ID: %d)\n", out.Task.ID)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("list [%s]", domain.StatusChoices()),
		Short: "List tasks",
		Long: `Display tasks in creation order, optionally only those with the given status.

Output columns: ID, STATUS, UPDATED, DESCRIPTION.`,
		Example: `  task-cli list
  task-cli list in-progress`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input usecase.ListTasksInput
			if len(args) > 0 {
				status, err := domain.ParseStatus(args[0])
				if err != nil {
					return usageErrorf(cmd, "invalid status %q", args[0])
				}
				input.Status = status
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}
}

// newUpdateCommand creates the update command.
func newUpdateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     `update <id> "<description>"`,
		Short:   "Change a task description",
		Example: `  task-cli update 1 "Buy groceries and cook dinner"`,
		Args:    requireArgs(2, "<id>", "description"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID:      id,
				Description: args[1],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated successfully.\n", out.Task.ID)
			return nil
		},
	}
}

// newMarkCommand creates mark-in-progress or mark-done.
// No command moves a task back to todo.
func newMarkCommand(c *app.Container, status domain.Status) *cobra.Command {
	name := "mark-" + string(status)
	return &cobra.Command{
		Use:     name + " <id>",
		Short:   fmt.Sprintf("Mark a task as %s", status),
		Example: fmt.Sprintf("  task-cli %s 1", name),
		Args:    requireArgs(1, "<id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := c.SetStatusUseCase().Execute(cmd.Context(), usecase.SetStatusInput{
				TaskID: id,
				Status: status,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as %s.\n", out.Task.ID, out.Task.Status)
			return nil
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a task permanently",
		Example: "  task-cli delete 1",
		Args:    requireArgs(1, "<id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted successfully.\n", out.Task.ID)
			return nil
		},
	}
}

// Column widths of the task table.
const (
	idWidth      = 4
	statusWidth  = 12
	updatedWidth = 19
	ruleWidth    = 70
)

var statusColors = map[domain.Status]lipgloss.Color{
	domain.StatusTodo:       lipgloss.Color("244"),
	domain.StatusInProgress: lipgloss.Color("214"),
	domain.StatusDone:       lipgloss.Color("42"),
}

// printTaskList prints tasks as a fixed-width table.
// Status cells are colored only when w is a terminal.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return
	}

	renderer := lipgloss.NewRenderer(w)

	_, _ = fmt.Fprintf(w, "%-*s %-*s %-*s %s\n",
		idWidth, "ID", statusWidth, "STATUS", updatedWidth, "UPDATED", "DESCRIPTION")
	_, _ = fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for _, t := range tasks {
		status := string(t.Status)
		styled := renderer.NewStyle().Foreground(statusColors[t.Status]).Render(status)
		// Pad outside the style so escape codes do not count toward the width
		padding := strings.Repeat(" ", max(0, statusWidth-len(status)))

		_, _ = fmt.Fprintf(w, "%-*d %s%s %-*s %s\n",
			idWidth, t.ID, styled, padding, updatedWidth, t.UpdatedAt, t.Description)
	}
}

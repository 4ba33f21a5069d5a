package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/task-cli/internal/domain"
)

// usageErrorf builds a usage error carrying the command's usage line.
// It matches domain.ErrUsage.
func usageErrorf(cmd *cobra.Command, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return domain.NewError(domain.ErrUsage, fmt.Sprintf("%s\nUsage: %s", msg, cmd.UseLine()))
}

// requireArgs rejects invocations with fewer than n positional arguments.
// Extra arguments are ignored.
func requireArgs(n int, what ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= n {
			return nil
		}
		missing := what[len(args):]
		return usageErrorf(cmd, "missing %s", strings.Join(missing, " and "))
	}
}

// parseTaskID parses a task ID argument. A leading '#' is accepted.
func parseTaskID(cmd *cobra.Command, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return 0, usageErrorf(cmd, "<id> must be a number")
	}
	return id, nil
}

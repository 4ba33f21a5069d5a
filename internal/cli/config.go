package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage task-cli configuration files and settings.

Sources, lowest precedence first:
  ~/.config/task-cli/config.toml   global file ($XDG_CONFIG_HOME is honored)
  ./task-cli.toml                  project file
  ./.env                           TASK_CLI_* variables
  environment                      TASK_CLI_STORE_PATH, TASK_CLI_STORE_FORMAT,
                                   TASK_CLI_LOG_LEVEL, TASK_CLI_LOG_FILE`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files exist, the resolved task file and the final
merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, info := range []domain.ConfigInfo{out.GlobalConfig, out.ProjectConfig} {
				if info.Path == "" {
					continue
				}
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Task File]")
			_, _ = fmt.Fprintln(w, out.StorePath)
			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template to stdout.

It does not depend on existing configuration files and works even if they
are broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigTemplateUseCase().Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates ./task-cli.toml in the current directory.
With --global, creates ~/.config/task-cli/config.toml.

Error conditions:
- Target file already exists: error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Global: global,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")

	return cmd
}

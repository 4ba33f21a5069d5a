// Package main is the entry point for the task-cli CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/cli"
	"github.com/runoshun/task-cli/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := execute(args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, formatError(err))
		return exitCode(err)
	}
	return exitOK
}

func execute(args []string, stdout, stderr io.Writer) error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		// Help, version and the config template do not need a valid configuration
		if errors.Is(err, domain.ErrInvalidConfig) && canRunWithoutConfig(args) {
			return executeRoot(nil, args, stdout, stderr)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	return executeRoot(container, args, stdout, stderr)
}

func executeRoot(c *app.Container, args []string, stdout, stderr io.Writer) error {
	rootCmd := cli.NewRootCommand(c, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// formatError renders an error for stderr.
func formatError(err error) string {
	return "Error: " + err.Error()
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrUsage) {
		return exitUsage
	}
	return exitError
}

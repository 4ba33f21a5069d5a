package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/task-cli/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Task list
	TaskID            lipgloss.Style
	TaskIDSelected    lipgloss.Style
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskUpdated       lipgloss.Style
	CursorSelected    lipgloss.Style

	// Status badges
	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskIDSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskUpdated: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		StatusTodo: lipgloss.NewStyle().
			Foreground(Colors.Todo),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone:
		return s.StatusDone
	default:
		return s.StatusTodo
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusDone:
		return "✓"
	default:
		return "?"
	}
}

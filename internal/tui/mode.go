// Package tui provides the interactive terminal browser for task-cli.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeInput               // Description input (add or update)
	ModeConfirm             // Confirmation dialog mode
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInput
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmDelete:
		return "delete"
	default:
		return ""
	}
}

// InputAction tells what the submitted description is used for.
type InputAction int

const (
	InputAdd    InputAction = iota // Create a new task
	InputUpdate                    // Replace the selected task's description
)

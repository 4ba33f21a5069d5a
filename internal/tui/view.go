package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInput, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	case m.notice != "":
		b.WriteString(m.styles.NoticeMsg.Render(m.notice) + "\n\n")
	}

	if len(m.taskList.Items()) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
		b.WriteString("\n")
	}

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.viewInput())
	}

	if m.mode == ModeNormal {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// viewHeader renders "Tasks", the active filter and the task count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")
	if m.filter != "" {
		title += " " + m.styles.StatusStyle(m.filter).Render("["+string(m.filter)+"]")
	}

	countText := fmt.Sprintf("showing %d of %d tasks", len(m.taskList.Items()), len(m.tasks))
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	// Calculate spacing to right-align
	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.filter != "" {
		b.WriteString(m.styles.Footer.Render(fmt.Sprintf("  No %s tasks", m.filter)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.styles.Footer.Render("  No tasks found.\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" to add your first task"))
	b.WriteString("\n")
	return b.String()
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	if m.confirmAction != ConfirmDelete {
		return ""
	}

	title := m.styles.DialogTitle.Foreground(Colors.Error).
		Render(fmt.Sprintf("Delete task #%d?", m.targetTaskID))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.FooterKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewInput renders the description input dialog.
func (m *Model) viewInput() string {
	heading := "◆ New Task"
	if m.inputAction == InputUpdate {
		heading = fmt.Sprintf("◆ Edit Task #%d", m.targetTaskID)
	}

	title := m.styles.DialogTitle.Render(heading)
	label := m.styles.InputPrompt.Render("Description")
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" save  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", label, m.input.View(), "", hint)
	return m.styles.Dialog.Render(content)
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	full := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("Press ? or esc to close")

	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", full, "", hint))
}

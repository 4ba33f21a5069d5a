package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/task-cli/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.updateTaskList()
		return m, nil

	case MsgTaskCreated:
		m.leaveInput()
		m.notice = fmt.Sprintf("Task added successfully (ID: %d)", msg.TaskID)
		return m, m.loadTasks()

	case MsgTaskUpdated:
		m.leaveInput()
		m.notice = fmt.Sprintf("Task %d updated successfully.", msg.TaskID)
		return m, m.loadTasks()

	case MsgTaskStatusUpdated:
		m.notice = fmt.Sprintf("Task %d marked as %s.", msg.TaskID, msg.Status)
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.notice = fmt.Sprintf("Task %d deleted successfully.", msg.TaskID)
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.notice = ""
		m.confirmAction = ConfirmNone
		// Keep the input open so the description can be fixed
		if m.mode != ModeInput {
			m.mode = ModeNormal
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear messages on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.taskList.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.taskList.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInput
		m.inputAction = InputAdd
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeInput
		m.inputAction = InputUpdate
		m.targetTaskID = task.ID
		m.input.SetValue(task.Description)
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Start):
		if task := m.SelectedTask(); task != nil {
			return m, m.setStatus(task.ID, domain.StatusInProgress)
		}
		return m, nil

	case key.Matches(msg, m.keys.Done):
		if task := m.SelectedTask(); task != nil {
			return m, m.setStatus(task.ID, domain.StatusDone)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.targetTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.updateTaskList()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleInputMode handles keys while a description is being typed.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.leaveInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		description := m.input.Value()
		if strings.TrimSpace(description) == "" {
			m.err = domain.ErrEmptyDescription
			return m, nil
		}
		if m.inputAction == InputUpdate {
			return m, m.updateTask(m.targetTaskID, description)
		}
		return m, m.addTask(description)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// leaveInput closes the input dialog and clears its value.
func (m *Model) leaveInput() {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.Reset()
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.deleteTask(m.targetTaskID)
		}
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

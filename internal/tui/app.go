package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	tasks  []*domain.Task
	notice string
	filter domain.Status // Empty shows every task

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model
	input    textinput.Model

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	inputAction   InputAction
	width         int
	height        int
	targetTaskID  int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.CharLimit = 500

	styles := DefaultStyles()
	taskList := list.New([]list.Item{}, newTaskDelegate(styles), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		container: c,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		input:     ti,
	}
}

// Run starts the TUI on the alternate screen and blocks until the user quits.
func Run(c *app.Container) error {
	_, err := tea.NewProgram(New(c), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads tasks from the repository.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// addTask returns a command that creates a new task.
func (m *Model) addTask(description string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(
			context.Background(),
			usecase.AddTaskInput{Description: description},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

// updateTask returns a command that replaces a task description.
func (m *Model) updateTask(taskID int, description string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.UpdateTaskUseCase().Execute(
			context.Background(),
			usecase.UpdateTaskInput{TaskID: taskID, Description: description},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{TaskID: out.Task.ID}
	}
}

// setStatus returns a command that changes a task status.
func (m *Model) setStatus(taskID int, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetStatusUseCase().Execute(
			context.Background(),
			usecase.SetStatusInput{TaskID: taskID, Status: status},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskStatusUpdated{TaskID: out.Task.ID, Status: out.Task.Status}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(
			context.Background(),
			usecase.DeleteTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: out.Task.ID}
	}
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// visibleTasks returns the tasks matching the status filter.
func (m *Model) visibleTasks() []*domain.Task {
	return domain.NewCollection(m.tasks...).WithStatus(m.filter)
}

// updateTaskList rebuilds the list items and keeps the selection on the
// same task when it is still visible.
func (m *Model) updateTaskList() {
	selectedID := 0
	if task := m.SelectedTask(); task != nil {
		selectedID = task.ID
	}

	visible := m.visibleTasks()
	items := make([]list.Item, 0, len(visible))
	selected := min(m.taskList.Index(), max(len(visible)-1, 0))
	for i, task := range visible {
		items = append(items, taskItem{task: task})
		if task.ID == selectedID {
			selected = i
		}
	}
	m.taskList.SetItems(items)
	m.taskList.Select(selected)
}

// nextFilter cycles all -> todo -> in-progress -> done -> all.
func nextFilter(current domain.Status) domain.Status {
	statuses := domain.AllStatuses()
	if current == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == current && i+1 < len(statuses) {
			return statuses[i+1]
		}
	}
	return ""
}

// updateLayoutSizes fits the list into the window below the header.
func (m *Model) updateLayoutSizes() {
	// App padding plus header, message line and footer
	width := max(m.width-4, 20)
	height := max(m.height-10, 3)
	m.taskList.SetSize(width, height)
	m.input.Width = max(width-8, 20)
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/task-cli/internal/domain"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Description
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// prefixWidth is the width of "  > 123  ○ in-progress  " plus the updated column.
const prefixWidth = 45

// Render draws one row: "> 12  ● in-progress  2025-10-16T18:20:05  Buy groceries".
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	maxDescLen := max(m.Width()-prefixWidth, 10)
	desc := escapeNewlines(task.Description)
	if runewidth.StringWidth(desc) > maxDescLen {
		desc = runewidth.Truncate(desc, maxDescLen, "...")
	}

	idStr := fmt.Sprintf("%3d", task.ID)
	statusText := fmt.Sprintf("%s %-11s", StatusIcon(task.Status), task.Status)
	updated := d.styles.TaskUpdated.Render(task.UpdatedAt.String())

	var line string
	if selected {
		indicator := d.styles.CursorSelected.Render(">")
		idPart := d.styles.TaskIDSelected.Render(idStr)
		statusPart := d.styles.StatusStyle(task.Status).Bold(true).Render(statusText)
		descPart := d.styles.TaskTitleSelected.Render(desc)
		line = "  " + indicator + " " + idPart + "  " + statusPart + "  " + updated + "  " + descPart
	} else {
		idPart := d.styles.TaskID.Render(idStr)
		statusPart := d.styles.StatusStyle(task.Status).Render(statusText)
		descPart := d.styles.TaskTitle.Render(desc)
		line = "    " + idPart + "  " + statusPart + "  " + updated + "  " + descPart
	}
	_, _ = fmt.Fprint(w, line)
}

package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tracker"
	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// TaskList is the scrollable sprint board: one row per task with its status
// icon, tag pill and text.
type TaskList struct {
	cursor
	tasks   []tracker.Task
	width   int
	focused bool
}

// NewTaskList creates a new TaskList component.
func NewTaskList() *TaskList {
	return &TaskList{
		cursor: cursor{height: 10},
	}
}

// SetTasks replaces the rows, keeping the selection in range.
func (t *TaskList) SetTasks(tasks []tracker.Task) {
	t.tasks = tasks
	t.setLen(len(tasks))
}

// Len returns the number of rows.
func (t *TaskList) Len() int {
	return len(t.tasks)
}

// SetSize sets both width and visible height.
func (t *TaskList) SetSize(width, height int) {
	t.width = width
	t.SetHeight(height)
}

// SetFocused sets whether the list has focus.
func (t *TaskList) SetFocused(focused bool) {
	t.focused = focused
}

// SelectedTask returns the selected task.
func (t *TaskList) SelectedTask() (tracker.Task, bool) {
	if t.selected < 0 || t.selected >= len(t.tasks) {
		return tracker.Task{}, false
	}
	return t.tasks[t.selected], true
}

// Update handles keyboard navigation.
func (t *TaskList) Update(msg tea.Msg) tea.Cmd {
	t.navigate(msg)
	return nil
}

// View renders the list.
func (t *TaskList) View() string {
	if len(t.tasks) == 0 {
		return styles.EmptyStyle.Render("No tasks yet.")
	}
	return t.window(t.renderRow)
}

func (t *TaskList) renderRow(i int) string {
	task := t.tasks[i]

	marker := "  "
	lineStyle := lipgloss.NewStyle()
	if i == t.selected && t.focused {
		marker = styles.KeyStyle.Render("▸ ")
		lineStyle = styles.SelectedStyle
	}

	pill := styles.Pill(string(task.Tag)).Render(task.Tag.Label())
	status := styles.MutedTextStyle.Render(task.Status.Label())

	text := task.Text
	if t.width > 30 {
		text = truncateString(text, t.width-30)
	}
	if task.Status == tracker.StatusDone {
		text = styles.MutedTextStyle.Strikethrough(true).Render(text)
	}

	line := fmt.Sprintf("%s%s %s %s  %s", marker, styles.StatusIcon(string(task.Status)), pill, text, status)
	if t.width > 0 {
		lineStyle = lineStyle.Width(t.width)
	}
	return lineStyle.Render(line)
}

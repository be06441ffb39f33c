package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// ConfirmAction represents the action being confirmed.
type ConfirmAction string

const (
	ConfirmDeleteTask     ConfirmAction = "delete-task"
	ConfirmDeleteFeedback ConfirmAction = "delete-feedback"
	ConfirmQuit           ConfirmAction = "quit"
)

// ConfirmDialog asks for a yes/no answer before an action.
type ConfirmDialog struct {
	visible     bool
	action      ConfirmAction
	target      string
	title       string
	message     string
	width       int
	destructive bool
}

// NewConfirmDialog creates a new ConfirmDialog component.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{width: 50}
}

// Show displays the dialog. target is returned with the answer, usually the
// id of the element the action applies to.
func (c *ConfirmDialog) Show(action ConfirmAction, target, title, message string, destructive bool) {
	c.visible = true
	c.action = action
	c.target = target
	c.title = title
	c.message = message
	c.destructive = destructive
}

// ShowDeleteTask asks before removing a task.
func (c *ConfirmDialog) ShowDeleteTask(id, text string) {
	c.Show(ConfirmDeleteTask, id, "Delete Task?", truncateString(text, 60), true)
}

// ShowDeleteFeedback asks before removing a feedback entry.
func (c *ConfirmDialog) ShowDeleteFeedback(id, tester string) {
	c.Show(ConfirmDeleteFeedback, id, "Delete Feedback?", "Entry from "+tester, true)
}

// ShowQuit asks before quitting a session whose changes are not being saved.
func (c *ConfirmDialog) ShowQuit() {
	c.Show(ConfirmQuit, "", "Quit?", "Storage is unavailable. Changes made in this session will be lost.", true)
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
}

// IsVisible returns whether the dialog is visible.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// Action returns the current action being confirmed.
func (c *ConfirmDialog) Action() ConfirmAction {
	return c.action
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
}

// Update handles input messages.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !c.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			answer := ConfirmYesMsg{Action: c.action, Target: c.target}
			c.Hide()
			return func() tea.Msg { return answer }
		case "n", "esc":
			c.Hide()
			return func() tea.Msg { return ConfirmNoMsg{} }
		}
	}
	return nil
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	accent := styles.Accent
	if c.destructive {
		accent = styles.Error
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(styles.Surface).
		Background(accent).
		Bold(true).
		Padding(0, 1).
		Width(c.width - 4)
	b.WriteString(title.Render(c.title))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(c.width - 8)
	b.WriteString(body.Render(c.message))
	b.WriteString("\n\n")

	yes := lipgloss.NewStyle().Foreground(accent).Bold(true).Render("[Y]es")
	no := styles.MutedTextStyle.Render("[N]o")
	b.WriteString(yes + "  " + no)

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(1, 2)
	return box.Render(b.String())
}

// ConfirmYesMsg is sent when the user confirms.
type ConfirmYesMsg struct {
	Action ConfirmAction
	Target string
}

// ConfirmNoMsg is sent when the user cancels.
type ConfirmNoMsg struct{}

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// Shortcut represents a keyboard shortcut.
type Shortcut struct {
	Key  string
	Desc string
}

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// DefaultHelpGroups lists every board shortcut.
var DefaultHelpGroups = []ShortcutGroup{
	{
		Title: "Board",
		Shortcuts: []Shortcut{
			{"Tab", "Next pane"},
			{"Shift+Tab", "Previous pane"},
			{"j/↓", "Move down"},
			{"k/↑", "Move up"},
			{"g/G", "Top / bottom"},
		},
	},
	{
		Title: "Sprint Board",
		Shortcuts: []Shortcut{
			{"a", "Add task"},
			{"1 2 3", "Set To-Do / Doing / Done"},
			{"s", "Cycle status"},
			{"x", "Delete task"},
		},
	},
	{
		Title: "Playtest Feedback",
		Shortcuts: []Shortcut{
			{"a", "Log feedback"},
			{"x", "Delete entry"},
		},
	},
	{
		Title: "Project / Checklist",
		Shortcuts: []Shortcut{
			{"e", "Edit project name and milestone"},
			{"Space", "Toggle checklist item"},
		},
	},
	{
		Title: "General",
		Shortcuts: []Shortcut{
			{"?", "Toggle help"},
			{"q", "Quit"},
			{"Esc", "Close overlay / cancel"},
		},
	},
}

// HelpOverlay displays keyboard shortcuts.
type HelpOverlay struct {
	visible bool
	width   int
	height  int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a new HelpOverlay with the board shortcuts.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  60,
		height: 20,
		groups: DefaultHelpGroups,
	}
}

// SetGroups sets custom shortcut groups.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) {
	h.groups = groups
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on esc, ? or q.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			h.Hide()
			return func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Width(h.width - 4)
	b.WriteString(title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for i, group := range h.groups {
		b.WriteString(h.renderGroup(group))
		if i < len(h.groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Italic(true).Render("Press ? or Esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Foreground).
		Padding(1, 2)
	return box.Render(b.String())
}

func (h *HelpOverlay) renderGroup(group ShortcutGroup) string {
	var b strings.Builder

	b.WriteString(styles.PaneTitleStyle.Render(group.Title))
	b.WriteString("\n")

	keyStyle := styles.KeyStyle.Width(10)
	for _, sc := range group.Shortcuts {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(sc.Key))
		b.WriteString(" ")
		b.WriteString(styles.HeaderLabelStyle.Render(sc.Desc))
		b.WriteString("\n")
	}
	return b.String()
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{shortcuts: shortcuts}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}
	content := strings.Join(parts, styles.MutedTextStyle.Render(" │ "))

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().Width(s.width).Align(lipgloss.Center).Render(content)
	}
	return content
}

// Shortcut sets, one per board pane.
var (
	MetaShortcuts = []ShortcutDef{
		{"e", "edit"},
		{"Tab", "next pane"},
		{"?", "help"},
		{"q", "quit"},
	}

	TaskShortcuts = []ShortcutDef{
		{"a", "add"},
		{"1/2/3", "to-do/doing/done"},
		{"s", "cycle status"},
		{"x", "delete"},
		{"Tab", "next pane"},
		{"?", "help"},
	}

	FeedbackShortcuts = []ShortcutDef{
		{"a", "log feedback"},
		{"x", "delete"},
		{"Tab", "next pane"},
		{"?", "help"},
	}

	ChecklistShortcuts = []ShortcutDef{
		{"Space", "toggle"},
		{"Tab", "next pane"},
		{"?", "help"},
		{"q", "quit"},
	}

	FormShortcuts = []ShortcutDef{
		{"Tab", "next field"},
		{"←/→", "change option"},
		{"Enter", "save"},
		{"Esc", "cancel"},
	}
)

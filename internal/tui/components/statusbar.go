package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// MessageKind selects the color of a status bar message.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// StatusBar shows the last action message on the left and the shortcuts of
// the focused pane on the right.
type StatusBar struct {
	message   string
	kind      MessageKind
	shortcuts []ShortcutDef
	saved     bool
	width     int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{saved: true}
}

// SetMessage sets the message shown on the left.
func (s *StatusBar) SetMessage(message string, kind MessageKind) {
	s.message = message
	s.kind = kind
}

// Message returns the current message.
func (s *StatusBar) Message() string {
	return s.message
}

// ClearMessage removes the message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// SetShortcuts sets the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetSaved sets whether changes are being persisted. With false the bar
// warns that nothing will be saved.
func (s *StatusBar) SetSaved(saved bool) {
	s.saved = saved
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var left string
	if !s.saved {
		left = styles.ErrorTextStyle.Render("● not saving")
	}
	if s.message != "" {
		msgStyle := styles.MutedTextStyle.Italic(true)
		switch s.kind {
		case MessageSuccess:
			msgStyle = styles.SuccessTextStyle
		case MessageError:
			msgStyle = styles.ErrorTextStyle
		}
		if left != "" {
			left += styles.MutedTextStyle.Render(" │ ")
		}
		left += msgStyle.Render(s.message)
	}

	right := NewShortcutBar(s.shortcuts...).View()

	container := styles.StatusBarStyle
	if s.width > 0 {
		container = container.Width(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return container.Render(left + strings.Repeat(" ", padding) + right)
		}
	}
	return container.Render(left + "  " + right)
}

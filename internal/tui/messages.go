package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/devtracker/internal/tui/components"
)

// statusTimeout is how long an action message stays in the status bar.
var statusTimeout = 4 * time.Second

// RefreshMsg reloads every view from the tracker.
type RefreshMsg struct{}

// StatusMsg sets the status bar message.
type StatusMsg struct {
	Text string
	Kind components.MessageKind
}

// clearStatusMsg clears the status bar if it still shows the message with
// the same sequence number.
type clearStatusMsg struct {
	seq int
}

// QuitMsg signals the TUI should quit.
type QuitMsg struct{}

func refreshCmd() tea.Msg {
	return RefreshMsg{}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

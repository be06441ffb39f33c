package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tracker"
	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// FeedbackList shows playtest feedback, newest first, with the tester on
// one line and the note under it.
type FeedbackList struct {
	cursor
	entries []tracker.FeedbackEntry
	width   int
	focused bool
}

// NewFeedbackList creates a new FeedbackList component.
func NewFeedbackList() *FeedbackList {
	return &FeedbackList{
		cursor: cursor{height: 5},
	}
}

// SetEntries replaces the rows, keeping the selection in range.
func (f *FeedbackList) SetEntries(entries []tracker.FeedbackEntry) {
	f.entries = entries
	f.setLen(len(entries))
}

// Len returns the number of entries.
func (f *FeedbackList) Len() int {
	return len(f.entries)
}

// SetSize sets the width and the visible height in lines. Each entry takes
// two lines.
func (f *FeedbackList) SetSize(width, height int) {
	f.width = width
	f.SetHeight(height / 2)
}

// SetFocused sets whether the list has focus.
func (f *FeedbackList) SetFocused(focused bool) {
	f.focused = focused
}

// SelectedEntry returns the selected entry.
func (f *FeedbackList) SelectedEntry() (tracker.FeedbackEntry, bool) {
	if f.selected < 0 || f.selected >= len(f.entries) {
		return tracker.FeedbackEntry{}, false
	}
	return f.entries[f.selected], true
}

// Update handles keyboard navigation.
func (f *FeedbackList) Update(msg tea.Msg) tea.Cmd {
	f.navigate(msg)
	return nil
}

// View renders the list.
func (f *FeedbackList) View() string {
	if len(f.entries) == 0 {
		return styles.EmptyStyle.Render("No feedback logged.")
	}
	return f.window(f.renderRow)
}

func (f *FeedbackList) renderRow(i int) string {
	e := f.entries[i]

	marker := "  "
	lineStyle := lipgloss.NewStyle()
	if i == f.selected && f.focused {
		marker = styles.KeyStyle.Render("▸ ")
		lineStyle = styles.SelectedStyle
	}

	sev := styles.Pill("sev").Render(e.Severity.Label())
	tester := styles.HeaderValueStyle.Render(e.Tester)

	note := e.Note
	if f.width > 8 {
		note = truncateString(note, f.width-6)
	}

	line := fmt.Sprintf("%s%s %s\n    %s", marker, tester, sev, note)
	if f.width > 0 {
		lineStyle = lineStyle.Width(f.width)
	}
	return lineStyle.Render(line)
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tracker"
	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// Header shows the project meta and the board counters.
type Header struct {
	summary   tracker.Summary
	sessionID string
	backend   string
	width     int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetSummary updates the project meta and counters.
func (h *Header) SetSummary(s tracker.Summary) {
	h.summary = s
}

// SetSessionID sets the session ID. Only the first 8 characters are shown.
func (h *Header) SetSessionID(id string) {
	h.sessionID = id
}

// SetBackend sets the storage backend name shown on the right.
func (h *Header) SetBackend(name string) {
	h.backend = name
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	sep := styles.MutedTextStyle.Render(" │ ")

	name := h.summary.ProjectName
	if strings.TrimSpace(name) == "" {
		name = "Untitled project"
	}
	top := styles.TitleStyle.Render("DEV BUILD TRACKER") + " " +
		styles.HeaderValueStyle.Render(name)

	milestone := styles.HeaderLabelStyle.Render("Next milestone: ") +
		styles.HeaderValueStyle.Render(h.summary.NextMilestone)

	stats := fmt.Sprintf("%s %s%s%s %s%s%s %s",
		styles.StatValueStyle.Render(fmt.Sprint(h.summary.OpenTasks)),
		styles.HeaderLabelStyle.Render("Open Tasks"),
		sep,
		styles.StatValueStyle.Render(fmt.Sprint(h.summary.Feedback)),
		styles.HeaderLabelStyle.Render("Feedback"),
		sep,
		styles.StatValueStyle.Render(fmt.Sprintf("%d/%d", h.summary.ChecklistDone, h.summary.ChecklistTotal)),
		styles.HeaderLabelStyle.Render("Checklist"),
	)

	if h.sessionID != "" {
		short := h.sessionID
		if len(short) > 8 {
			short = short[:8]
		}
		stats += sep + styles.HeaderLabelStyle.Render("Session: ") + styles.HeaderValueStyle.Render(short)
	}
	if h.backend != "" {
		stats += sep + styles.HeaderLabelStyle.Render("Storage: ") + styles.HeaderValueStyle.Render(h.backend)
	}

	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}
	return headerStyle.Render(top + "\n" + milestone + "\n" + stats)
}

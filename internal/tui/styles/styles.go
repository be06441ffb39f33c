// Package styles provides Lip Gloss styles for the devtracker board.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Foreground  = lipgloss.Color("#FFFFFF") // White
	Background  = lipgloss.Color("#262626") // Neutral 800
	Surface     = lipgloss.Color("#171717") // Neutral 900
	BorderColor = lipgloss.Color("#404040") // Neutral 700
	Muted       = lipgloss.Color("#737373") // Neutral 500
	MutedLight  = lipgloss.Color("#A3A3A3") // Neutral 400

	Emerald = lipgloss.Color("#6EE7B7") // feature
	Rose    = lipgloss.Color("#FDA4AF") // bug, delete
	Sky     = lipgloss.Color("#7DD3FC") // polish
	Amber   = lipgloss.Color("#FCD34D") // severity

	Primary = Foreground
	Accent  = Amber
	Success = Emerald
	Error   = Rose
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Surface).
			Background(Foreground).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// StatValueStyle is for the large counters in the header.
	StatValueStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)
)

// Pane styles.
var (
	// PaneStyle is a card with a rounded border.
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedPaneStyle is the card that has focus.
	FocusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Foreground).
				Padding(0, 1)

	// PaneTitleStyle is the card title.
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// PaneSubtitleStyle is the line under the card title.
	PaneSubtitleStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// SelectedStyle highlights the selected row of a focused list.
	SelectedStyle = lipgloss.NewStyle().
			Background(Background).
			Bold(true)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// EmptyStyle is for empty list placeholders.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Form component styles.
var (
	// FormTitleStyle is for form titles.
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// FormLabelStyle is for form field labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for focused form field labels.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// FormInputStyle is for form text inputs (unfocused).
	FormInputStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// FormInputFocusedStyle is for focused form text inputs.
	FormInputFocusedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Background).
				Padding(0, 1)

	// CheckboxCheckedStyle is for checked checkboxes.
	CheckboxCheckedStyle = lipgloss.NewStyle().
				Foreground(Success)

	// CheckboxUncheckedStyle is for unchecked checkboxes.
	CheckboxUncheckedStyle = lipgloss.NewStyle().
				Foreground(Muted)
)

// pillBase is the shared shape of every pill badge.
var pillBase = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1)

// Pill returns the badge style for a tag, status or severity. Kinds with
// no color of their own get the neutral badge.
func Pill(kind string) lipgloss.Style {
	switch kind {
	case "feature":
		return pillBase.Foreground(Emerald)
	case "bug":
		return pillBase.Foreground(Rose)
	case "polish":
		return pillBase.Foreground(Sky)
	case "sev":
		return pillBase.Foreground(Amber)
	default:
		return pillBase.Foreground(MutedLight).Background(Background)
	}
}

// Status icons.
var (
	IconTodo  = lipgloss.NewStyle().Foreground(Muted).Render("○")
	IconDoing = lipgloss.NewStyle().Foreground(Sky).Render("→")
	IconDone  = lipgloss.NewStyle().Foreground(Emerald).Render("✓")
)

// StatusIcon returns the icon for a task status.
func StatusIcon(status string) string {
	switch status {
	case "doing":
		return IconDoing
	case "done":
		return IconDone
	default:
		return IconTodo
	}
}

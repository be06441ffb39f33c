package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// Button is a focusable submit button.
type Button struct {
	label   string
	focused bool
	id      string
	danger  bool
}

// NewButton creates a new Button component.
func NewButton(id, label string) *Button {
	return &Button{
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (b *Button) ID() string {
	return b.id
}

// Focus focuses the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// SetDanger renders the button in the destructive color.
func (b *Button) SetDanger(danger bool) {
	b.danger = danger
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Update reports whether the button was activated.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd, bool) {
	if !b.focused {
		return b, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ":
			return b, nil, true
		}
	}
	return b, nil, false
}

// View renders the button.
func (b *Button) View() string {
	color := styles.Foreground
	if b.danger {
		color = styles.Error
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	if b.focused {
		style = style.Foreground(styles.Surface).Background(color).Bold(true)
	} else {
		style = style.Foreground(color)
	}
	return style.Render(b.label)
}

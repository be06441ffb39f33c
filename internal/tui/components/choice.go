package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// Option is one selectable value of a Choice.
type Option struct {
	Value string
	Label string
}

// Choice is a form field that cycles through a fixed set of options with
// left/right. It never holds a value outside its options.
type Choice struct {
	id       string
	label    string
	options  []Option
	selected int
	focused  bool
	pill     func(value string) string
}

// NewChoice creates a Choice with the first option selected.
func NewChoice(id, label string, options ...Option) *Choice {
	return &Choice{
		id:      id,
		label:   label,
		options: options,
	}
}

// ID returns the component's unique identifier.
func (c *Choice) ID() string {
	return c.id
}

// Focus focuses the choice.
func (c *Choice) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus from the choice.
func (c *Choice) Blur() {
	c.focused = false
}

// Focused returns whether the choice is focused.
func (c *Choice) Focused() bool {
	return c.focused
}

// SetPillStyle sets a renderer for the selected value, such as a colored
// tag badge.
func (c *Choice) SetPillStyle(fn func(value string) string) {
	c.pill = fn
}

// Value returns the selected option value, or "" without options.
func (c *Choice) Value() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.selected].Value
}

// Select selects the option with the given value. It reports false and
// leaves the selection unchanged when no option matches.
func (c *Choice) Select(value string) bool {
	for i, o := range c.options {
		if o.Value == value {
			c.selected = i
			return true
		}
	}
	return false
}

// Next selects the following option, wrapping around.
func (c *Choice) Next() {
	if len(c.options) == 0 {
		return
	}
	c.selected = (c.selected + 1) % len(c.options)
}

// Prev selects the preceding option, wrapping around.
func (c *Choice) Prev() {
	if len(c.options) == 0 {
		return
	}
	c.selected--
	if c.selected < 0 {
		c.selected = len(c.options) - 1
	}
}

// Update handles messages for the choice.
func (c *Choice) Update(msg tea.Msg) (*Choice, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "right", "l", " ":
			c.Next()
		case "left", "h":
			c.Prev()
		}
	}
	return c, nil
}

// View renders the choice.
func (c *Choice) View() string {
	labelStyle := styles.FormLabelStyle
	if c.focused {
		labelStyle = styles.FormLabelFocusedStyle
	}

	parts := make([]string, 0, len(c.options))
	for i, o := range c.options {
		switch {
		case i == c.selected && c.pill != nil:
			parts = append(parts, c.pill(o.Value))
		case i == c.selected:
			parts = append(parts, styles.Pill("").Render(o.Label))
		default:
			parts = append(parts, styles.MutedTextStyle.Render(o.Label))
		}
	}

	view := labelStyle.Render(c.label+": ") + strings.Join(parts, " ")
	if c.focused {
		view += styles.HelpStyle.Render("  ←/→")
	}
	return view
}

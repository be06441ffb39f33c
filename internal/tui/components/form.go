package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/devtracker/internal/tui/styles"
)

// FormField is the interface that all form fields must implement.
type FormField interface {
	ID() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

// FormSubmittedMsg is sent when a form is submitted. Values maps field IDs
// to their raw values; buttons and checkboxes are not included.
type FormSubmittedMsg struct {
	FormID string
	Values map[string]string
}

// FormCanceledMsg is sent when a form is canceled.
type FormCanceledMsg struct {
	FormID string
}

// Form is a container for form fields with navigation support. Enter on a
// text or choice field submits, as does activating a button.
type Form struct {
	id         string
	title      string
	subtitle   string
	fields     []FormField
	focusIndex int
	width      int
	showHelp   bool
}

// NewForm creates a new Form container.
func NewForm(id, title string) *Form {
	return &Form{
		id:       id,
		title:    title,
		showHelp: true,
	}
}

// ID returns the form's unique identifier.
func (f *Form) ID() string {
	return f.id
}

// SetSubtitle sets the muted line under the title.
func (f *Form) SetSubtitle(s string) {
	f.subtitle = s
}

// AddFields adds fields to the form.
func (f *Form) AddFields(fields ...FormField) {
	f.fields = append(f.fields, fields...)
}

// SetWidth sets the form width and resizes its text fields.
func (f *Form) SetWidth(width int) {
	f.width = width
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			ti.SetWidth(width - 4)
		}
	}
}

// SetShowHelp sets whether to show help text.
func (f *Form) SetShowHelp(show bool) {
	f.showHelp = show
}

// FocusIndex returns the current focus index.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// FocusedField returns the currently focused field, or nil if none.
func (f *Form) FocusedField() FormField {
	if f.focusIndex >= 0 && f.focusIndex < len(f.fields) {
		return f.fields[f.focusIndex]
	}
	return nil
}

// GetField returns a field by ID.
func (f *Form) GetField(id string) FormField {
	for _, field := range f.fields {
		if field.ID() == id {
			return field
		}
	}
	return nil
}

// Values returns the current value of every text and choice field.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		switch v := field.(type) {
		case *TextInput:
			values[v.ID()] = v.Value()
		case *Choice:
			values[v.ID()] = v.Value()
		}
	}
	return values
}

// Focus focuses the first field.
func (f *Form) Focus() tea.Cmd {
	return f.FocusField(0)
}

// Blur blurs all fields in the form.
func (f *Form) Blur() {
	for _, field := range f.fields {
		field.Blur()
	}
}

// NextField moves focus to the next field, wrapping around.
func (f *Form) NextField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focusIndex + 1) % len(f.fields))
}

// PrevField moves focus to the previous field, wrapping around.
func (f *Form) PrevField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	i := f.focusIndex - 1
	if i < 0 {
		i = len(f.fields) - 1
	}
	return f.FocusField(i)
}

// FocusField focuses a specific field by index.
func (f *Form) FocusField(index int) tea.Cmd {
	if index < 0 || index >= len(f.fields) {
		return nil
	}
	if cur := f.FocusedField(); cur != nil {
		cur.Blur()
	}
	f.focusIndex = index
	return f.fields[index].Focus()
}

// Reset clears every text field, keeps choices as they are and focuses the
// first field.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			ti.Reset()
		}
	}
	f.Blur()
	return f.Focus()
}

func (f *Form) submit() tea.Cmd {
	msg := FormSubmittedMsg{FormID: f.id, Values: f.Values()}
	return func() tea.Msg { return msg }
}

// Update handles Tab/Shift+Tab navigation, submit and cancel, and delegates
// other messages to the focused field.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f, f.NextField()
		case "shift+tab", "up":
			return f, f.PrevField()
		case "esc":
			id := f.id
			return f, func() tea.Msg { return FormCanceledMsg{FormID: id} }
		case "enter":
			switch f.FocusedField().(type) {
			case *TextInput, *Choice:
				return f, f.submit()
			}
		}
	}

	field := f.FocusedField()
	if field == nil {
		return f, nil
	}

	var cmd tea.Cmd
	switch typed := field.(type) {
	case *TextInput:
		_, cmd = typed.Update(msg)
	case *Choice:
		_, cmd = typed.Update(msg)
	case *Checkbox:
		_, cmd = typed.Update(msg)
	case *Button:
		var activated bool
		_, cmd, activated = typed.Update(msg)
		if activated {
			return f, f.submit()
		}
	}
	return f, cmd
}

// View renders the form.
func (f *Form) View() string {
	var b strings.Builder

	if f.title != "" {
		b.WriteString(styles.FormTitleStyle.Render(f.title))
		b.WriteString("\n")
	}
	if f.subtitle != "" {
		b.WriteString(styles.PaneSubtitleStyle.Render(f.subtitle))
		b.WriteString("\n")
	}
	if f.title != "" || f.subtitle != "" {
		b.WriteString("\n")
	}

	for i, field := range f.fields {
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}

	if f.showHelp {
		sep := styles.HelpStyle.Render(" │ ")
		help := styles.KeyStyle.Render("Tab") + styles.HelpStyle.Render(": next field") + sep +
			styles.KeyStyle.Render("Enter") + styles.HelpStyle.Render(": save") + sep +
			styles.KeyStyle.Render("Esc") + styles.HelpStyle.Render(": cancel")
		b.WriteString("\n\n")
		b.WriteString(help)
	}

	return b.String()
}

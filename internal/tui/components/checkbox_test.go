package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewCheckbox(t *testing.T) {
	cb := NewCheckbox("rn", "Patch Notes Written")
	if cb == nil {
		t.Fatal("NewCheckbox returned nil")
	}
	if cb.ID() != "rn" {
		t.Errorf("Expected ID 'rn', got '%s'", cb.ID())
	}
	if cb.Checked() {
		t.Error("Checkbox should not be checked initially")
	}
}

func TestCheckboxToggle(t *testing.T) {
	cb := NewCheckbox("rn", "Patch Notes Written")

	cb.Toggle()
	if !cb.Checked() {
		t.Error("Checkbox should be checked after Toggle()")
	}
	cb.Toggle()
	if cb.Checked() {
		t.Error("Checkbox should be unchecked after second Toggle()")
	}

	cb.SetChecked(true)
	if !cb.Checked() {
		t.Error("SetChecked(true) should check the box")
	}
}

func TestCheckboxUpdate(t *testing.T) {
	cb := NewCheckbox("rn", "Patch Notes Written")

	cb.Update(key(tea.KeySpace))
	if cb.Checked() {
		t.Error("Unfocused checkbox should ignore keys")
	}

	cb.Focus()
	cb.Update(key(tea.KeySpace))
	if !cb.Checked() {
		t.Error("Space should toggle a focused checkbox")
	}
	cb.Update(key(tea.KeyEnter))
	if cb.Checked() {
		t.Error("Enter should toggle a focused checkbox")
	}
	cb.Update(runeKey("x"))
	if cb.Checked() {
		t.Error("Other keys should not toggle")
	}
}

func TestCheckboxView(t *testing.T) {
	cb := NewCheckbox("qa", "QA / Final Playtest")
	cb.SetHint("Ran through main loop")

	view := cb.View()
	if !strings.Contains(view, "[ ]") {
		t.Error("Unchecked view should show an empty box")
	}
	if !strings.Contains(view, "QA / Final Playtest") {
		t.Error("View should contain the label")
	}
	if !strings.Contains(view, "Ran through main loop") {
		t.Error("View should contain the hint")
	}

	cb.SetChecked(true)
	if !strings.Contains(cb.View(), "✓") {
		t.Error("Checked view should show a check mark")
	}
}

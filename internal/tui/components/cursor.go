package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// cursor tracks selection and scroll position over a list of n rows.
type cursor struct {
	n           int
	selected    int
	height      int
	scrollStart int
}

func (c *cursor) setLen(n int) {
	c.n = n
	if c.selected >= n {
		c.selected = n - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
	c.updateScroll()
}

// MoveUp moves selection up.
func (c *cursor) MoveUp() {
	if c.selected > 0 {
		c.selected--
		c.updateScroll()
	}
}

// MoveDown moves selection down.
func (c *cursor) MoveDown() {
	if c.selected < c.n-1 {
		c.selected++
		c.updateScroll()
	}
}

// GoToTop moves selection to the first row.
func (c *cursor) GoToTop() {
	c.selected = 0
	c.updateScroll()
}

// GoToBottom moves selection to the last row.
func (c *cursor) GoToBottom() {
	if c.n > 0 {
		c.selected = c.n - 1
		c.updateScroll()
	}
}

// Selected returns the selected row index.
func (c *cursor) Selected() int {
	return c.selected
}

// SetHeight sets how many rows are visible.
func (c *cursor) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	c.height = height
	c.updateScroll()
}

// updateScroll ensures the selected row is visible.
func (c *cursor) updateScroll() {
	if c.selected < c.scrollStart {
		c.scrollStart = c.selected
	}
	if c.selected >= c.scrollStart+c.height {
		c.scrollStart = c.selected - c.height + 1
	}
	if c.scrollStart < 0 {
		c.scrollStart = 0
	}
}

// navigate applies the shared list movement keys.
func (c *cursor) navigate(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}
	switch key.String() {
	case "up", "k":
		c.MoveUp()
	case "down", "j":
		c.MoveDown()
	case "home", "g":
		c.GoToTop()
	case "end", "G":
		c.GoToBottom()
	}
}

// window renders the visible rows with more-above/below indicators.
func (c *cursor) window(render func(i int) string) string {
	end := c.scrollStart + c.height
	if end > c.n {
		end = c.n
	}

	lines := make([]string, 0, end-c.scrollStart+2)
	if c.scrollStart > 0 {
		lines = append(lines, "  ↑ more above")
	}
	for i := c.scrollStart; i < end; i++ {
		lines = append(lines, render(i))
	}
	if end < c.n {
		lines = append(lines, "  ↓ more below")
	}
	return strings.Join(lines, "\n")
}

// truncateString truncates s to maxLen runes.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-1]) + "…"
}

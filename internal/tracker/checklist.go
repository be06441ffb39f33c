package tracker

import (
	"strings"
	"sync"

	"github.com/dbmrq/devtracker/internal/kv"
)

// ChecklistItem names one release checklist flag by its storage field.
type ChecklistItem string

const (
	ItemReleaseNotes     ChecklistItem = "rn"
	ItemIconScreenshots  ChecklistItem = "art"
	ItemMonetizationPass ChecklistItem = "monet"
	ItemQAPlaytest       ChecklistItem = "qa"
)

// ChecklistItems lists the items in display order.
var ChecklistItems = []ChecklistItem{
	ItemReleaseNotes,
	ItemIconScreenshots,
	ItemMonetizationPass,
	ItemQAPlaytest,
}

// ItemNames returns the item keys as strings.
func ItemNames() []string {
	names := make([]string, len(ChecklistItems))
	for i, it := range ChecklistItems {
		names[i] = string(it)
	}
	return names
}

// ParseItem normalizes s and reports whether it names an item.
func ParseItem(s string) (ChecklistItem, bool) {
	it := ChecklistItem(strings.ToLower(strings.TrimSpace(s)))
	return it, it.IsValid()
}

// IsValid returns true if the item is known.
func (it ChecklistItem) IsValid() bool {
	switch it {
	case ItemReleaseNotes, ItemIconScreenshots, ItemMonetizationPass, ItemQAPlaytest:
		return true
	default:
		return false
	}
}

// Label returns the item title.
func (it ChecklistItem) Label() string {
	switch it {
	case ItemReleaseNotes:
		return "Patch Notes Written"
	case ItemIconScreenshots:
		return "Store Icon / Screenshots Updated"
	case ItemMonetizationPass:
		return "Monetization Pass"
	case ItemQAPlaytest:
		return "QA / Final Playtest"
	default:
		return string(it)
	}
}

// Hint returns the one-line description shown under the title.
func (it ChecklistItem) Hint() string {
	switch it {
	case ItemReleaseNotes:
		return "Bullet list of changes, fixes, known issues."
	case ItemIconScreenshots:
		return "Thumbnail, game icon, promo images match new build."
	case ItemMonetizationPass:
		return "Gamepasses / devproducts still work, no paywall bugs."
	case ItemQAPlaytest:
		return "You (or a friend) actually ran through main loop with no admin powers."
	default:
		return ""
	}
}

// ItemStatus is an item with its current flag.
type ItemStatus struct {
	Item ChecklistItem
	Done bool
}

// Checklist holds the release checklist flags.
type Checklist struct {
	container

	mu    sync.RWMutex
	state ChecklistState
}

// NewChecklist returns a checklist with every item unchecked.
func NewChecklist(p kv.Persister) *Checklist {
	return &Checklist{container: newContainer(KeyChecks, p)}
}

// Hydrate loads the stored flags the first time it is called.
// Flags missing from storage are unchecked.
func (c *Checklist) Hydrate(store *kv.Store) bool {
	return c.hydrateOnce(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.state = kv.Load(store, c.key, c.state)
	})
}

// State returns the current flags.
func (c *Checklist) State() ChecklistState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SetReleaseNotesWritten sets the patch notes flag.
func (c *Checklist) SetReleaseNotesWritten(v bool) {
	c.update(func(s *ChecklistState) { s.ReleaseNotesWritten = v })
}

// SetIconScreenshotsUpdated sets the store art flag.
func (c *Checklist) SetIconScreenshotsUpdated(v bool) {
	c.update(func(s *ChecklistState) { s.IconScreenshotsUpdated = v })
}

// SetMonetizationPassDone sets the monetization flag.
func (c *Checklist) SetMonetizationPassDone(v bool) {
	c.update(func(s *ChecklistState) { s.MonetizationPassDone = v })
}

// SetQAPlaytestDone sets the final playtest flag.
func (c *Checklist) SetQAPlaytestDone(v bool) {
	c.update(func(s *ChecklistState) { s.QAPlaytestDone = v })
}

// Set sets item to v. It reports false for an unknown item.
func (c *Checklist) Set(item ChecklistItem, v bool) bool {
	field := c.fieldFor(item)
	if field == nil {
		return false
	}
	c.update(func(s *ChecklistState) { *field(s) = v })
	return true
}

// Toggle flips item and returns its new value. ok is false for an unknown item.
func (c *Checklist) Toggle(item ChecklistItem) (v bool, ok bool) {
	field := c.fieldFor(item)
	if field == nil {
		return false, false
	}
	c.update(func(s *ChecklistState) {
		p := field(s)
		*p = !*p
		v = *p
	})
	return v, true
}

// IsDone returns the flag for item.
func (c *Checklist) IsDone(item ChecklistItem) bool {
	field := c.fieldFor(item)
	if field == nil {
		return false
	}
	state := c.State()
	return *field(&state)
}

// Items returns every item with its flag, in display order.
func (c *Checklist) Items() []ItemStatus {
	state := c.State()
	items := make([]ItemStatus, len(ChecklistItems))
	for i, it := range ChecklistItems {
		items[i] = ItemStatus{Item: it, Done: *c.fieldFor(it)(&state)}
	}
	return items
}

// Done returns how many items are checked.
func (c *Checklist) Done() int {
	n := 0
	for _, it := range c.Items() {
		if it.Done {
			n++
		}
	}
	return n
}

// Total returns the number of checklist items.
func (c *Checklist) Total() int {
	return len(ChecklistItems)
}

func (c *Checklist) update(fn func(*ChecklistState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
	c.persist(c.state)
}

func (c *Checklist) fieldFor(item ChecklistItem) func(*ChecklistState) *bool {
	switch item {
	case ItemReleaseNotes:
		return func(s *ChecklistState) *bool { return &s.ReleaseNotesWritten }
	case ItemIconScreenshots:
		return func(s *ChecklistState) *bool { return &s.IconScreenshotsUpdated }
	case ItemMonetizationPass:
		return func(s *ChecklistState) *bool { return &s.MonetizationPassDone }
	case ItemQAPlaytest:
		return func(s *ChecklistState) *bool { return &s.QAPlaytestDone }
	default:
		return nil
	}
}

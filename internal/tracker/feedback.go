package tracker

import (
	"strings"
	"sync"

	"github.com/dbmrq/devtracker/internal/kv"
)

// FeedbackList is the playtest log, newest first. Entries are immutable
// once added.
type FeedbackList struct {
	container

	mu      sync.RWMutex
	entries []FeedbackEntry
	ids     IDSource
}

// NewFeedbackList returns an empty feedback list that persists through p.
func NewFeedbackList(p kv.Persister, ids IDSource) *FeedbackList {
	if ids == nil {
		ids = defaultIDs
	}
	return &FeedbackList{
		container: newContainer(KeyFeedback, p),
		entries:   []FeedbackEntry{},
		ids:       ids,
	}
}

// Hydrate loads the stored log the first time it is called.
func (l *FeedbackList) Hydrate(store *kv.Store) bool {
	return l.hydrateOnce(func() {
		entries := kv.Load(store, l.key, []FeedbackEntry{})
		if entries == nil {
			entries = []FeedbackEntry{}
		}
		l.mu.Lock()
		l.entries = entries
		l.mu.Unlock()
	})
}

// AddFeedback prepends a new entry. A blank note is ignored, a blank tester
// is recorded as DefaultTester and an unknown severity becomes DefaultSeverity.
func (l *FeedbackList) AddFeedback(tester, note string, severity Severity) (entry FeedbackEntry, ok bool) {
	note = strings.TrimSpace(note)
	if note == "" {
		return FeedbackEntry{}, false
	}
	tester = strings.TrimSpace(tester)
	if tester == "" {
		tester = DefaultTester
	}
	if !severity.IsValid() {
		severity = DefaultSeverity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry = FeedbackEntry{
		ID:       l.freshID(),
		Tester:   tester,
		Note:     note,
		Severity: severity,
	}
	l.entries = append([]FeedbackEntry{entry}, l.entries...)
	l.persistLocked()
	return entry, true
}

// RemoveFeedback deletes the entry with id and reports whether it existed.
func (l *FeedbackList) RemoveFeedback(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
	l.persistLocked()
	return true
}

// Entries returns a copy of the log, newest first.
func (l *FeedbackList) Entries() []FeedbackEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]FeedbackEntry(nil), l.entries...)
}

// Get returns the entry with id.
func (l *FeedbackList) Get(id string) (FeedbackEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexLocked(id); i >= 0 {
		return l.entries[i], true
	}
	return FeedbackEntry{}, false
}

// Count returns the number of entries.
func (l *FeedbackList) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// CountBySeverity returns the number of entries with the given severity.
func (l *FeedbackList) CountBySeverity(severity Severity) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, e := range l.entries {
		if e.Severity == severity {
			n++
		}
	}
	return n
}

func (l *FeedbackList) indexLocked(id string) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (l *FeedbackList) freshID() string {
	for {
		id := l.ids.New(FeedbackIDPrefix)
		if l.indexLocked(id) < 0 {
			return id
		}
	}
}

func (l *FeedbackList) persistLocked() {
	snapshot := make([]FeedbackEntry, len(l.entries))
	copy(snapshot, l.entries)
	l.persist(snapshot)
}

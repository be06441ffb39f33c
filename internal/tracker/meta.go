package tracker

import (
	"sync"

	"github.com/dbmrq/devtracker/internal/kv"
)

// Meta holds the project name and next milestone.
type Meta struct {
	container

	mu   sync.RWMutex
	meta ProjectMeta
}

// NewMeta returns a meta container starting from defaults.
func NewMeta(p kv.Persister, defaults ProjectMeta) *Meta {
	return &Meta{
		container: newContainer(KeyMeta, p),
		meta:      defaults,
	}
}

// Hydrate loads the stored meta the first time it is called. A field that
// is empty in storage keeps its current in-memory value.
func (m *Meta) Hydrate(store *kv.Store) bool {
	return m.hydrateOnce(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		stored := kv.Load(store, m.key, m.meta)
		if stored.ProjectName != "" {
			m.meta.ProjectName = stored.ProjectName
		}
		if stored.NextMilestone != "" {
			m.meta.NextMilestone = stored.NextMilestone
		}
	})
}

// Get returns the current meta.
func (m *Meta) Get() ProjectMeta {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta
}

// ProjectName returns the project name.
func (m *Meta) ProjectName() string {
	return m.Get().ProjectName
}

// NextMilestone returns the next milestone.
func (m *Meta) NextMilestone() string {
	return m.Get().NextMilestone
}

// SetProjectName overwrites the project name. Any string is accepted.
func (m *Meta) SetProjectName(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meta.ProjectName = s
	m.persist(m.meta)
}

// SetNextMilestone overwrites the next milestone. Any string is accepted.
func (m *Meta) SetNextMilestone(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meta.NextMilestone = s
	m.persist(m.meta)
}

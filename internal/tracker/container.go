package tracker

import (
	"sync"

	"github.com/dbmrq/devtracker/internal/idgen"
	"github.com/dbmrq/devtracker/internal/kv"
)

// IDSource produces identifiers for new records.
type IDSource interface {
	New(prefix string) string
}

// IDFunc adapts a function to IDSource.
type IDFunc func(prefix string) string

// New calls f.
func (f IDFunc) New(prefix string) string {
	return f(prefix)
}

// defaultIDs is the package-level generator.
var defaultIDs IDSource = IDFunc(idgen.New)

// container is the load/persist lifecycle shared by every state container.
type container struct {
	key       string
	persister kv.Persister
	hydrateMu sync.Mutex
	hydrated  bool
}

func newContainer(key string, p kv.Persister) container {
	return container{key: key, persister: p}
}

// Key returns the storage key the container owns.
func (c *container) Key() string {
	return c.key
}

// Hydrated reports whether the container has loaded from storage.
func (c *container) Hydrated() bool {
	c.hydrateMu.Lock()
	defer c.hydrateMu.Unlock()
	return c.hydrated
}

// hydrateOnce runs load the first time it is called and reports whether it ran.
func (c *container) hydrateOnce(load func()) bool {
	c.hydrateMu.Lock()
	defer c.hydrateMu.Unlock()
	if c.hydrated {
		return false
	}
	load()
	c.hydrated = true
	return true
}

func (c *container) persist(value any) {
	if c.persister != nil {
		c.persister.Persist(c.key, value)
	}
}

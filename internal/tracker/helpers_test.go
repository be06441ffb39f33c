package tracker

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbmrq/devtracker/internal/kv"
	"github.com/dbmrq/devtracker/internal/logging"
)

// newTestTracker returns an initialized tracker over a fresh memory backend.
func newTestTracker(t *testing.T, opts ...Option) (*Tracker, *kv.MemoryBackend) {
	t.Helper()
	mem := kv.NewMemoryBackend()
	return newTrackerOn(t, mem, opts...), mem
}

// newTrackerOn returns an initialized tracker over an existing backend.
func newTrackerOn(t *testing.T, b kv.Backend, opts ...Option) *Tracker {
	t.Helper()
	store := kv.NewStore(b, logging.NewNoop())
	opts = append([]Option{WithLogger(logging.NewNoop())}, opts...)
	tr := New(store, nil, opts...)
	tr.Initialize()
	return tr
}

// stored decodes the raw value under key.
func stored[T any](t *testing.T, b kv.Backend, key string) T {
	t.Helper()
	data, err := b.Get(key)
	require.NoError(t, err, "expected %s to be persisted", key)
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

// sequenceIDs returns the given ids in order, then numbered fallbacks.
func sequenceIDs(ids ...string) IDSource {
	var mu sync.Mutex
	n := 0
	return IDFunc(func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		if n <= len(ids) {
			return ids[n-1]
		}
		return fmt.Sprintf("%s_gen%d", prefix, n)
	})
}

// recorder is a Persister that counts writes per key.
type recorder struct {
	mu     sync.Mutex
	writes map[string]int
	last   map[string]string
}

func newRecorder() *recorder {
	return &recorder{writes: map[string]int{}, last: map[string]string{}}
}

func (r *recorder) Persist(key string, value any) {
	data, _ := json.Marshal(value)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes[key]++
	r.last[key] = string(data)
}

func (r *recorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes[key]
}

package kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbmrq/devtracker/internal/logging"
)

// gateBackend blocks every Set until release is closed.
type gateBackend struct {
	*MemoryBackend
	entered chan struct{}
	release chan struct{}
}

func newGateBackend() *gateBackend {
	return &gateBackend{
		MemoryBackend: NewMemoryBackend(),
		entered:       make(chan struct{}, 1),
		release:       make(chan struct{}),
	}
}

func (g *gateBackend) Set(key string, value []byte) error {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.release
	return g.MemoryBackend.Set(key, value)
}

// failBackend fails every Set.
type failBackend struct{ *MemoryBackend }

func (failBackend) Set(string, []byte) error { return errors.New("disk full") }

func TestWriter_PersistThenFlush(t *testing.T) {
	mem := NewMemoryBackend()
	w := NewWriter(NewStore(mem, logging.NewNoop()), 8)
	defer w.Close()

	w.Persist("devtracker_tasks", []item{{ID: "task_1", Text: "Add sprint anim", Status: "todo"}})
	require.NoError(t, w.Flush(context.Background()))

	data, err := mem.Get("devtracker_tasks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"task_1","text":"Add sprint anim","status":"todo"}]`, string(data))

	written, dropped := w.Stats()
	assert.Equal(t, int64(1), written)
	assert.Equal(t, int64(0), dropped)
}

func TestWriter_LastWriteWins(t *testing.T) {
	mem := NewMemoryBackend()
	w := NewWriter(NewStore(mem, logging.NewNoop()), 256)
	defer w.Close()

	for i := 0; i < 100; i++ {
		w.Persist("devtracker_meta", map[string]string{"projectName": fmt.Sprintf("v%d", i)})
	}
	require.NoError(t, w.Flush(context.Background()))

	data, err := mem.Get("devtracker_meta")
	require.NoError(t, err)
	assert.JSONEq(t, `{"projectName":"v99"}`, string(data))
}

func TestWriter_EncodesAtEnqueueTime(t *testing.T) {
	mem := NewMemoryBackend()
	w := NewWriter(NewStore(mem, logging.NewNoop()), 8)
	defer w.Close()

	list := []item{{ID: "a", Status: "todo"}}
	w.Persist("devtracker_tasks", list)
	list[0].Status = "done"
	require.NoError(t, w.Flush(context.Background()))

	data, err := mem.Get("devtracker_tasks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","text":"","status":"todo"}]`, string(data))
}

func TestWriter_FullQueueDrops(t *testing.T) {
	gate := newGateBackend()
	w := NewWriter(NewStore(gate, logging.NewNoop()), 1)

	w.Persist("k", 1)
	<-gate.entered    // the worker holds the first write
	w.Persist("k", 2) // fills the queue
	w.Persist("k", 3) // dropped

	close(gate.release)
	require.NoError(t, w.Flush(context.Background()))
	require.NoError(t, w.Close())

	written, dropped := w.Stats()
	assert.Equal(t, int64(2), written)
	assert.Equal(t, int64(1), dropped)

	data, err := gate.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
}

func TestWriter_FailedWriteIsDropped(t *testing.T) {
	w := NewWriter(NewStore(failBackend{NewMemoryBackend()}, logging.NewNoop()), 4)
	defer w.Close()

	w.Persist("k", "v")
	require.NoError(t, w.Flush(context.Background()))

	written, dropped := w.Stats()
	assert.Equal(t, int64(0), written)
	assert.Equal(t, int64(1), dropped)
}

func TestWriter_CloseDrains(t *testing.T) {
	mem := NewMemoryBackend()
	w := NewWriter(NewStore(mem, logging.NewNoop()), 16)

	for i := 0; i < 10; i++ {
		w.Persist(fmt.Sprintf("key_%d", i), i)
	}
	require.NoError(t, w.Close())

	assert.Len(t, mem.Keys(), 10)
}

func TestWriter_UseAfterClose(t *testing.T) {
	mem := NewMemoryBackend()
	w := NewWriter(NewStore(mem, logging.NewNoop()), 4)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	assert.NotPanics(t, func() { w.Persist("k", 1) })
	assert.NoError(t, w.Flush(context.Background()))
	assert.Empty(t, mem.Keys())

	_, dropped := w.Stats()
	assert.Equal(t, int64(1), dropped)
}

func TestWriter_DropLogCarriesStorageKey(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(NewStore(NewMemoryBackend(), logging.NewWriter(&buf, nil)), 4)
	require.NoError(t, w.Close())

	w.Persist("devtracker_feedback", []string{})
	assert.Contains(t, buf.String(), "writer closed, value dropped")
	assert.Contains(t, buf.String(), "key=devtracker_feedback")
}

func TestWriter_FlushHonorsContext(t *testing.T) {
	gate := newGateBackend()
	w := NewWriter(NewStore(gate, logging.NewNoop()), 4)

	w.Persist("k", 1)
	<-gate.entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Flush(ctx), context.DeadlineExceeded)

	close(gate.release)
	require.NoError(t, w.Close())
}

func TestWriter_ConcurrentPersist(t *testing.T) {
	mem := NewMemoryBackend()
	w := NewWriter(NewStore(mem, logging.NewNoop()), 1024)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				w.Persist(fmt.Sprintf("key_%d", g), i)
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, w.Close())

	for g := 0; g < 8; g++ {
		data, err := mem.Get(fmt.Sprintf("key_%d", g))
		require.NoError(t, err)
		assert.Equal(t, "49", string(data))
	}
}

func TestNewWriter_DefaultQueueSize(t *testing.T) {
	w := NewWriter(NewStore(NewMemoryBackend(), logging.NewNoop()), 0)
	defer w.Close()
	assert.Equal(t, DefaultQueueSize, cap(w.queue))
}

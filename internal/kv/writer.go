package kv

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is used when NewWriter is given a non-positive size.
const DefaultQueueSize = 64

type write struct {
	key  string
	data []byte
	// done is set for flush markers, which carry no data.
	done chan struct{}
}

// Writer is the asynchronous write-through. Persist encodes immediately and
// hands the bytes to a single background goroutine, so writes are applied in
// the order they were enqueued and the caller never waits on I/O.
type Writer struct {
	store *Store
	queue chan write

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	written atomic.Int64
	dropped atomic.Int64
}

// NewWriter starts a writer over store with room for queueSize pending writes.
func NewWriter(store *Store, queueSize int) *Writer {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	w := &Writer{
		store: store,
		queue: make(chan write, queueSize),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *Writer) run() {
	defer w.wg.Done()
	for wr := range w.queue {
		if wr.done != nil {
			close(wr.done)
			continue
		}
		if err := w.store.backend.Set(wr.key, wr.data); err != nil {
			w.dropped.Add(1)
			w.store.keyLogger(wr.key).Warn("write failed, value dropped", "error", err)
			continue
		}
		w.written.Add(1)
		w.store.keyLogger(wr.key).Debug("saved", "bytes", len(wr.data))
	}
}

// Persist encodes value and enqueues it for key. If the queue is full or
// the writer is closed the write is logged and dropped.
func (w *Writer) Persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		w.dropped.Add(1)
		w.store.keyLogger(key).Warn("encode failed, value dropped", "error", err)
		return
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.dropped.Add(1)
		w.store.keyLogger(key).Warn("writer closed, value dropped")
		return
	}

	select {
	case w.queue <- write{key: key, data: data}:
	default:
		w.dropped.Add(1)
		w.store.keyLogger(key).Warn("write queue full, value dropped", "capacity", cap(w.queue))
	}
}

// Flush blocks until every write enqueued before the call has been applied
// or ctx is done.
func (w *Writer) Flush(ctx context.Context) error {
	done := make(chan struct{})

	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return nil
	}
	select {
	case w.queue <- write{done: done}:
		w.mu.RUnlock()
	case <-ctx.Done():
		w.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and stops the background goroutine.
// It is safe to call more than once.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}

// Stats reports how many writes were applied and how many were dropped.
func (w *Writer) Stats() (written, dropped int64) {
	return w.written.Load(), w.dropped.Load()
}

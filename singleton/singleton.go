package singleton

import (
	"sync"
	"sync/atomic"
)

// Journal is the process-wide shared instance: an append-only event log.
// The zero value is never handed out; obtain it via Instance.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

var (
	instance *Journal
	once     sync.Once

	// constructions counts how many times the instance was built.
	// It must never exceed 1; verified by the white-box concurrency test.
	constructions atomic.Int64
)

// Instance returns the shared Journal, constructing it on first access.
// Concurrent first-time callers all observe the same fully-constructed
// instance; exactly one construction occurs.
func Instance() *Journal {
	once.Do(func() {
		constructions.Add(1)
		instance = &Journal{}
	})
	return instance
}

// Write appends event to the journal. Safe for concurrent use.
func (j *Journal) Write(event string) {
	j.mu.Lock()
	j.entries = append(j.entries, event)
	j.mu.Unlock()
}

// Len reports how many events have been written.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Entries returns a copy of the journal contents in write order.
// The copy keeps callers from aliasing the internal slice.
func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

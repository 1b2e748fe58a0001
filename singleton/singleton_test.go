// Package singleton verifies the exactly-once contract from inside the
// package, where the construction counter is visible.
package singleton

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInstance_ConcurrentIdentity fans out many goroutines racing for the
// first access and asserts they all receive the same pointer and that the
// instance was constructed exactly once.
func TestInstance_ConcurrentIdentity(t *testing.T) {
	const callers = 64
	var wg sync.WaitGroup
	wg.Add(callers)

	got := make([]*Journal, callers)
	for i := 0; i < callers; i++ {
		go func(slot int) {
			defer wg.Done()
			got[slot] = Instance()
		}(i)
	}
	wg.Wait()

	first := got[0]
	require.NotNil(t, first)
	for i, j := range got {
		require.Same(t, first, j, "caller %d received a different instance", i)
	}
	require.EqualValues(t, 1, constructions.Load(), "instance constructed more than once")
}

// TestJournal_ConcurrentWrites checks that the shared instance tolerates
// concurrent writers without losing events.
func TestJournal_ConcurrentWrites(t *testing.T) {
	j := Instance()
	before := j.Len()

	const writers = 100
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			j.Write("event")
		}()
	}
	wg.Wait()

	require.Equal(t, before+writers, j.Len())
}

// TestJournal_EntriesIsACopy ensures callers cannot mutate the journal
// through the returned slice.
func TestJournal_EntriesIsACopy(t *testing.T) {
	j := Instance()
	j.Write("original")

	snap := j.Entries()
	require.NotEmpty(t, snap)
	idx := len(snap) - 1
	snap[idx] = "tampered"

	require.Equal(t, "original", j.Entries()[idx])
}

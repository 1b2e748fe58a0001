// Package flyweight demonstrates the Flyweight pattern: a pool that hands
// out one shared instance per key, constructing each instance at most once
// for the pool's lifetime.
//
// The shared objects are Vehicles keyed by brand. Get is an atomic
// lookup-or-insert: the read and the insert happen under one lock, so two
// goroutines racing on a fresh key can never construct duplicates.
//
// ⚙️ Usage:
//
//	import "github.com/crafted-go/patterns/flyweight"
//
//	pool := flyweight.NewPool()
//	a := pool.Get("BMW")
//	b := pool.Get("BMW")
//	// a == b: reference-identical, constructed once
//
// Default returns a process-wide pool (lazily initialized exactly once)
// for callers who want sharing without wiring a Pool through their code.
// Reset exists for tests; the pattern itself has no teardown — shared
// instances live as long as the process does.
//
// Vehicles are shared: treat them as immutable. Mutating a flyweight
// mutates it for every holder of the same key.
package flyweight

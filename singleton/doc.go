// Package singleton demonstrates the Singleton pattern: one shared
// instance per process, constructed lazily and exactly once, reachable
// only through an accessor.
//
// The shared object is a Journal — a small append-only event log. There is
// no exported constructor; Instance is the single way in, and sync.Once
// makes first access safe under any number of concurrent callers. The
// instance lives until process teardown.
//
// ⚙️ Usage:
//
//	import "github.com/crafted-go/patterns/singleton"
//
//	singleton.Instance().Write("service started")
//	fmt.Println(singleton.Instance().Len()) // 1
//
// Guarantees:
//
//   - Every Instance call, including the first, returns the same *Journal.
//   - Construction happens exactly once even when the first accesses race.
//   - The Journal itself is safe for concurrent Write/Len/Entries.
package singleton

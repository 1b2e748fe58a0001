// Package factory demonstrates the Factory Method pattern: a single
// creation entry point that maps a closed enumeration value to a concrete
// implementation of a shared capability interface.
//
// The capability here is Greeter — one behavior method, Greet — with one
// concrete greeter per supported Lang. Callers never see the concrete
// types; they hold the interface and the behavior identifies the variant.
//
// ⚙️ Usage:
//
//	import "github.com/crafted-go/patterns/factory"
//
//	g := factory.New(factory.English)
//	fmt.Println(g.Greet("Ada")) // Hello, Ada
//
// Guarantees:
//
//   - Every Lang case maps to exactly one concrete Greeter, checked at
//     compile time: extending the enumeration without extending the
//     constructor table fails the build, never a runtime "unknown case".
//   - New has no side effects beyond constructing the returned value.
//   - Passing a Lang outside the enumeration is a contract violation and
//     panics; there is no error-return path by design of the closed set.
package factory

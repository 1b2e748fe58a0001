// Package builder demonstrates the Builder pattern: a complex value is
// assembled through a fluent chain of configuration calls and finished by
// one explicit Build step.
//
// The value under construction is a Computer. Each WithX call mutates the
// builder's private draft and returns the builder itself, so calls chain
// in any order; for a given attribute the last call wins. Attributes never
// configured stay at their zero values — Build does not fail.
//
// ⚙️ Usage:
//
//	import "github.com/crafted-go/patterns/builder"
//
//	pc := builder.New().
//		WithProcessor("Ryzen 9").
//		WithMemory(64).
//		WithStorage(2048).
//		Build()
//
// Guarantees:
//
//   - Configuration order is irrelevant to the final value, except that two
//     calls targeting the same attribute resolve last-call-wins.
//   - Build hands out a plain Computer value; the builder keeps no hold on it.
//   - A builder is single-use: configuring or building again after Build is
//     a contract violation and panics. Reset explicitly re-arms the builder
//     with a fresh draft when reuse is wanted.
package builder

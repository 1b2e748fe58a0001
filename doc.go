// Package patterns is a reading catalog of the classic creational and
// structural design patterns, each one a small, independent Go package.
//
// 🚀 What is patterns?
//
//	A teaching library that demonstrates, one package per pattern:
//		• factory    — map a closed enumeration to concrete implementations
//		• singleton  — exactly-once lazy construction of a shared instance
//		• builder    — fluent, chainable assembly of a complex value
//		• decorator  — layered wrappers that extend a capability in place
//		• flyweight  — keyed pool that shares one instance per identity
//
// ✨ Why choose patterns?
//
//   - Beginner-friendly – each package reads top to bottom in minutes
//   - Honest contracts – invariants stated in doc comments, enforced in code
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-correct – the two contracts that matter under goroutines
//     (exactly-once init, atomic lookup-or-insert) are locked down and tested
//
// The packages never import one another; control flow is always
// caller → pattern entry point → returned value. Start anywhere.
//
// Quick taste:
//
//	g := factory.New(factory.English)
//	fmt.Println(g.Greet("Ada"))          // Hello, Ada
//
//	pc := decorator.WithProcessorUpgrade(decorator.NewDesktop())
//	fmt.Println(pc.Cost(), pc.Description())
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/crafted-go/patterns
package patterns

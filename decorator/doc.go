// Package decorator demonstrates the Decorator pattern: wrappers that
// implement the same capability interface as the object they wrap, each
// layer delegating inward and applying a fixed local adjustment.
//
// The capability is Component — a read-only cost and description. The base
// is a desktop computer; the decorators are hardware upgrades. Composition
// replaces inheritance: there is no decorator base type, every layer holds
// its inner Component and implements the interface directly.
//
// ⚙️ Usage:
//
//	import "github.com/crafted-go/patterns/decorator"
//
//	pc := decorator.WithGraphicsUpgrade(
//		decorator.WithProcessorUpgrade(
//			decorator.NewDesktop()))
//	fmt.Println(pc.Cost())        // 450
//	fmt.Println(pc.Description()) // Desktop Computer, core i7, NVIDIA GTX 1080
//
// Nesting order is the caller's composition tool: cost adjustments commute
// (addition), description suffixes do not (concatenation). No layer ever
// mutates what it wraps — every read flows through the whole chain.
package decorator

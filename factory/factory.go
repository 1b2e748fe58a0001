package factory

import "fmt"

// Lang selects which concrete Greeter New constructs.
// The set is closed: valid values are exactly English and Mandarin.
type Lang int

const (
	// English selects the English-speaking greeter.
	English Lang = iota

	// Mandarin selects the Mandarin-speaking greeter.
	Mandarin

	// langCount closes the enumeration; every Lang below it must have an
	// entry in greeters.
	langCount
)

// String returns the canonical name of the language, for diagnostics.
func (l Lang) String() string {
	switch l {
	case English:
		return "English"
	case Mandarin:
		return "Mandarin"
	default:
		return fmt.Sprintf("Lang(%d)", int(l))
	}
}

// Greeter is the capability every concrete variant implements.
type Greeter interface {
	// Greet returns a greeting addressed to name.
	Greet(name string) string
}

// greeters maps each Lang to its constructor. The array is sized by the
// literal, and the guard below indexes it with langCount-1, so adding a
// Lang without adding a constructor stops compiling.
var greeters = [...]func() Greeter{
	English:  func() Greeter { return englishGreeter{} },
	Mandarin: func() Greeter { return mandarinGreeter{} },
}

var _ = greeters[langCount-1] // compile-time exhaustiveness guard

// New constructs the Greeter mapped to lang.
//
// lang must be one of the enumerated cases; anything else is a contract
// violation and panics. New allocates the returned value and nothing else.
func New(lang Lang) Greeter {
	if lang < 0 || lang >= langCount {
		panic(fmt.Sprintf("factory: unknown Lang %d", int(lang)))
	}
	return greeters[lang]()
}

// englishGreeter greets in English.
type englishGreeter struct{}

func (englishGreeter) Greet(name string) string {
	return fmt.Sprintf("Hello, %s", name)
}

// mandarinGreeter greets in Mandarin.
type mandarinGreeter struct{}

func (mandarinGreeter) Greet(name string) string {
	return fmt.Sprintf("你好，%s", name)
}

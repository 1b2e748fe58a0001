package factory_test

import (
	"strings"
	"testing"

	"github.com/crafted-go/patterns/factory"
)

// TestNew_MappedBehavior verifies that every enumeration case constructs
// the implementation whose behavior identifies it.
func TestNew_MappedBehavior(t *testing.T) {
	cases := []struct {
		lang factory.Lang
		want string
	}{
		{factory.English, "Hello, Ada"},
		{factory.Mandarin, "你好，Ada"},
	}
	for _, tc := range cases {
		g := factory.New(tc.lang)
		if got := g.Greet("Ada"); got != tc.want {
			t.Errorf("New(%v).Greet(Ada) = %q; want %q", tc.lang, got, tc.want)
		}
	}
}

// TestNew_FreshInstances ensures each call constructs a new value rather
// than handing out shared state.
func TestNew_FreshInstances(t *testing.T) {
	a := factory.New(factory.English)
	b := factory.New(factory.English)
	if a == nil || b == nil {
		t.Fatal("New returned nil Greeter")
	}
	// Same behavior, independent values.
	if a.Greet("x") != b.Greet("x") {
		t.Error("two English greeters disagree on the same input")
	}
}

// TestNew_UnknownLangPanics documents that an out-of-range discriminant is
// a contract violation, not a runtime error path.
func TestNew_UnknownLangPanics(t *testing.T) {
	for _, bad := range []factory.Lang{-1, 99} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("New(%d): expected panic, got none", int(bad))
					return
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "factory:") {
					t.Errorf("New(%d): panic = %v; want factory-prefixed message", int(bad), r)
				}
			}()
			factory.New(bad)
		}()
	}
}

// TestLang_String covers the Stringer including the out-of-range form.
func TestLang_String(t *testing.T) {
	if got := factory.English.String(); got != "English" {
		t.Errorf("English.String() = %q", got)
	}
	if got := factory.Mandarin.String(); got != "Mandarin" {
		t.Errorf("Mandarin.String() = %q", got)
	}
	if got := factory.Lang(42).String(); got != "Lang(42)" {
		t.Errorf("Lang(42).String() = %q", got)
	}
}

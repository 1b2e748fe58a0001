package builder

// Computer is the completed value a Builder produces. It is plain data;
// once Build returns it, nothing in this package mutates it again.
type Computer struct {
	// Processor is the CPU model, e.g. "Ryzen 9". Empty if never configured.
	Processor string

	// Graphics is the GPU model. Empty if never configured.
	Graphics string

	// MemoryGB is the installed RAM in gigabytes. Zero if never configured.
	MemoryGB int

	// StorageGB is the installed storage in gigabytes. Zero if never configured.
	StorageGB int
}

// Builder assembles a Computer step by step. The draft is owned exclusively
// by the builder until Build extracts it. Builders are not safe for
// concurrent use; one goroutine drives one build.
type Builder struct {
	draft Computer
	done  bool
}

// New returns a Builder with an all-defaults draft.
func New() *Builder {
	return &Builder{}
}

// WithProcessor sets the CPU model and returns the builder for chaining.
func (b *Builder) WithProcessor(model string) *Builder {
	b.mustBeOpen("WithProcessor")
	b.draft.Processor = model
	return b
}

// WithGraphics sets the GPU model and returns the builder for chaining.
func (b *Builder) WithGraphics(model string) *Builder {
	b.mustBeOpen("WithGraphics")
	b.draft.Graphics = model
	return b
}

// WithMemory sets the RAM size in gigabytes and returns the builder.
func (b *Builder) WithMemory(gb int) *Builder {
	b.mustBeOpen("WithMemory")
	b.draft.MemoryGB = gb
	return b
}

// WithStorage sets the storage size in gigabytes and returns the builder.
func (b *Builder) WithStorage(gb int) *Builder {
	b.mustBeOpen("WithStorage")
	b.draft.StorageGB = gb
	return b
}

// Build finalizes the draft and returns the completed Computer.
// The builder is spent afterwards; any further configuration or a second
// Build panics until Reset is called.
func (b *Builder) Build() Computer {
	b.mustBeOpen("Build")
	b.done = true
	return b.draft
}

// Reset discards the current draft and re-arms a spent builder, returning
// it for chaining. After Reset the builder behaves exactly like New().
func (b *Builder) Reset() *Builder {
	b.draft = Computer{}
	b.done = false
	return b
}

// mustBeOpen panics when the builder was already finalized; the method
// name makes the violation traceable from the panic message.
func (b *Builder) mustBeOpen(method string) {
	if b.done {
		panic("builder: " + method + " called after Build; use Reset to reuse a builder")
	}
}

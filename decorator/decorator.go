package decorator

// Component is the capability shared by the base object and every
// decorator layer: two read-only derived attributes.
type Component interface {
	// Cost returns the total price of the component including every
	// wrapped layer beneath it.
	Cost() int64

	// Description returns the human-readable composition, outermost
	// layer last.
	Description() string
}

// Base desktop attributes and the fixed per-upgrade adjustments.
const (
	desktopCost = 300
	desktopDesc = "Desktop Computer"

	processorCost = 100
	processorDesc = ", core i7"

	graphicsCost = 50
	graphicsDesc = ", NVIDIA GTX 1080"
)

// desktop is the undecorated base component.
type desktop struct{}

// NewDesktop returns the base component: cost 300, description
// "Desktop Computer".
func NewDesktop() Component {
	return desktop{}
}

func (desktop) Cost() int64         { return desktopCost }
func (desktop) Description() string { return desktopDesc }

// processorUpgrade adds a CPU upgrade on top of its inner component.
// The inner reference is fixed at construction and never reassigned.
type processorUpgrade struct {
	inner Component
}

// WithProcessorUpgrade wraps inner with a processor upgrade: +100 cost,
// ", core i7" appended to the description. A nil inner is a contract
// violation and panics.
func WithProcessorUpgrade(inner Component) Component {
	if inner == nil {
		panic("decorator: WithProcessorUpgrade requires a non-nil inner Component")
	}
	return processorUpgrade{inner: inner}
}

func (u processorUpgrade) Cost() int64         { return u.inner.Cost() + processorCost }
func (u processorUpgrade) Description() string { return u.inner.Description() + processorDesc }

// graphicsUpgrade adds a GPU upgrade on top of its inner component.
type graphicsUpgrade struct {
	inner Component
}

// WithGraphicsUpgrade wraps inner with a graphics upgrade: +50 cost,
// ", NVIDIA GTX 1080" appended to the description. A nil inner is a
// contract violation and panics.
func WithGraphicsUpgrade(inner Component) Component {
	if inner == nil {
		panic("decorator: WithGraphicsUpgrade requires a non-nil inner Component")
	}
	return graphicsUpgrade{inner: inner}
}

func (u graphicsUpgrade) Cost() int64         { return u.inner.Cost() + graphicsCost }
func (u graphicsUpgrade) Description() string { return u.inner.Description() + graphicsDesc }

package flyweight

import "sync"

// Vehicle is the shared flyweight. Every caller asking the same pool for
// the same brand holds the same *Vehicle, so it must be treated as
// immutable after construction.
type Vehicle struct {
	// Brand is the identity attribute the pool keys on.
	Brand string

	// AssembledBy records which production line built the shared instance;
	// illustrative intrinsic state carried by the flyweight.
	AssembledBy string
}

// newVehicle constructs the shared instance for brand. Called at most once
// per key per pool lifetime.
func newVehicle(brand string) *Vehicle {
	return &Vehicle{Brand: brand, AssembledBy: "line-1"}
}

// Pool caches Vehicles by brand. The zero value is not ready; use NewPool.
// All methods are safe for concurrent use.
type Pool struct {
	mu       sync.Mutex
	vehicles map[string]*Vehicle

	// built counts constructions; it never exceeds the number of distinct
	// keys seen, verified by the white-box concurrency test.
	built int
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{vehicles: make(map[string]*Vehicle)}
}

// Get returns the shared Vehicle for brand, constructing and registering
// it on first request. The check and the insert run under one lock, so
// for a given key at most one instance ever exists, even when concurrent
// callers miss simultaneously.
func (p *Pool) Get(brand string) *Vehicle {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok := p.vehicles[brand]; ok {
		return v
	}
	v := newVehicle(brand)
	p.vehicles[brand] = v
	p.built++
	return v
}

// Len reports how many distinct brands the pool currently holds.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.vehicles)
}

// Reset empties the pool. Instances handed out earlier stay valid but are
// no longer shared with future Get calls. Intended for tests; the pattern
// itself has no teardown.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vehicles = make(map[string]*Vehicle)
	p.built = 0
}

var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// Default returns the process-wide Pool, created lazily on first access
// with the same exactly-once guarantee the singleton package demonstrates.
func Default() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool()
	})
	return defaultPool
}

package recommend

import (
	"sync"
	"sync/atomic"
)

// Guard marks a flow as in flight so overlapping activations are ignored.
type Guard interface {
	// TryStart marks the flow in flight. It returns false if it already was.
	TryStart() bool
	// Done clears the in-flight mark.
	Done()
}

// Flight is the Guard for a single flow. The zero value is ready to use.
type Flight struct {
	busy atomic.Bool
}

func (f *Flight) TryStart() bool {
	return f.busy.CompareAndSwap(false, true)
}

func (f *Flight) Done() {
	f.busy.Store(false)
}

// InFlight reports whether a request is outstanding.
func (f *Flight) InFlight() bool {
	return f.busy.Load()
}

// FlightTable tracks in-flight flows by key, e.g. one per browser session.
// Keys are only held while a request is outstanding.
type FlightTable struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewFlightTable() *FlightTable {
	return &FlightTable{active: make(map[string]struct{})}
}

// For returns the Guard for key.
func (t *FlightTable) For(key string) Guard {
	return keyedFlight{table: t, key: key}
}

// InFlight reports whether key has a request outstanding.
func (t *FlightTable) InFlight(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[key]
	return ok
}

// Len returns the number of flows currently in flight.
func (t *FlightTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

func (t *FlightTable) tryStart(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.active[key]; ok {
		return false
	}
	t.active[key] = struct{}{}
	return true
}

func (t *FlightTable) done(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, key)
}

type keyedFlight struct {
	table *FlightTable
	key   string
}

func (f keyedFlight) TryStart() bool { return f.table.tryStart(f.key) }
func (f keyedFlight) Done()          { f.table.done(f.key) }

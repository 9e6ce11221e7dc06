// Package metrics provides a small mutex-guarded counter registry for
// codec activity: encode/decode operation counts, corrected byte totals,
// and decode failures. The demo records into the default registry and
// folds a snapshot into its final summary.
package metrics

import (
	"sort"
	"sync"
)

// Counter names recorded by the demo. Dot-separated, subsystem first.
const (
	EncodeOps      = "codec.encode.ops"
	DecodeOps      = "codec.decode.ops"
	DecodeFailures = "codec.decode.failures"
	CorrectedBytes = "codec.decode.corrected_bytes"
	CorruptedBytes = "corrupt.bytes"
)

// Registry accumulates named monotonic counters. All methods are safe
// for concurrent use.
type Registry struct {
	mu       sync.Mutex
	counters map[string]uint64
}

// NewRegistry returns an empty counter registry.
func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]uint64)}
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Inc increments the named counter by one.
func (r *Registry) Inc(name string) {
	r.Add(name, 1)
}

// Add increments the named counter by delta.
func (r *Registry) Add(name string, delta uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name] += delta
}

// Get returns the current value of the named counter; zero if it was
// never recorded.
func (r *Registry) Get(name string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name]
}

// Snapshot returns a copy of every counter, detached from the registry.
func (r *Registry) Snapshot() map[string]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]uint64, len(r.counters))
	for name, v := range r.counters {
		out[name] = v
	}
	return out
}

// Names returns the recorded counter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.counters))
	for name := range r.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears every counter. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters = make(map[string]uint64)
}

// Inc increments a counter in the default registry.
func Inc(name string) { defaultRegistry.Inc(name) }

// Add increments a counter in the default registry by delta.
func Add(name string, delta uint64) { defaultRegistry.Add(name, delta) }

// Get reads a counter from the default registry.
func Get(name string) uint64 { return defaultRegistry.Get(name) }

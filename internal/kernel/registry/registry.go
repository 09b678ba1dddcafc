// Package registry provides the tier table and kernel registry used by the
// dispatcher.
//
// Tiers describe the vector register widths this architecture can offer,
// widest first. Kernel packages (lanes, archsimd) register entries in their
// init() functions; each entry binds an implementation to one tier and lists
// the type pairs and bitwise operations it has a bulk kernel for. At runtime
// the dispatcher walks Tiers() once per call and asks the registry for the
// highest-priority kernel of that tier that the CPU can run.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// ConvertBulk converts the first n elements of src into dst.
//
// n must be a multiple of the tier's lane count for the pair and both views
// must hold at least n elements. The kernel does not check either; the
// dispatcher's plan guarantees them.
type ConvertBulk func(src, dst view.View, n int)

// BitwiseBulk combines a and b into dst bytewise. len(dst) is a multiple of
// the tier width and a, b are at least as long. b is nil for unary operations.
type BitwiseBulk func(dst, a, b []byte)

// Entry represents one implementation of a tier's kernels.
//
// Not all pairs or operations need to be populated; a missing map entry means
// the implementation has no vector path for it.
type Entry struct {
	// Name is a human-readable identifier for the implementation (e.g., "lanes", "archsimd").
	Name string

	// Tier is the name of the tier the kernels fill a register of.
	Tier string

	// Level is an instruction set the implementation needs on top of the
	// tier's own level. SIMDNone when the tier's level suffices.
	Level cpu.SIMDLevel

	// Priority determines selection order among entries of the same tier.
	// Higher priority entries are preferred. Suggested priorities:
	//   - portable lane kernels: 0
	//   - assembly kernels: 20
	//   - archsimd kernels: 30
	Priority int

	// Convert maps a type pair to its bulk conversion kernel.
	Convert map[numeric.Pair]ConvertBulk

	// Bitwise maps a bitwise operation to its bulk kernel.
	Bitwise map[numeric.BitwiseOp]BitwiseBulk
}

// Registry manages the registration and lookup of kernel entries.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is the default registry instance used by the dispatcher.
var Global = &Registry{}

// Register adds an entry to the registry, keeping entries sorted by priority
// in descending order.
//
// This function is typically called from init() functions in kernel
// packages. It is safe to call concurrently, but all registrations should
// complete before the first lookup.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	// Insertion step; the registry holds a handful of entries.
	for j := len(r.entries) - 1; j > 0 && r.entries[j-1].Priority < r.entries[j].Priority; j-- {
		r.entries[j-1], r.entries[j] = r.entries[j], r.entries[j-1]
	}
}

// LookupConvert returns the highest-priority conversion kernel registered for
// tier and pair whose required level is supported by features, and the name
// of the entry that provides it. It returns nil when no entry qualifies.
func (r *Registry) LookupConvert(tier string, pair numeric.Pair, features cpu.Features) (ConvertBulk, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		e := &r.entries[i]
		if e.Tier != tier || !cpu.Supports(features, e.Level) {
			continue
		}
		if fn := e.Convert[pair]; fn != nil {
			return fn, e.Name
		}
	}
	return nil, ""
}

// LookupBitwise is LookupConvert for bitwise operations.
func (r *Registry) LookupBitwise(tier string, op numeric.BitwiseOp, features cpu.Features) (BitwiseBulk, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		e := &r.entries[i]
		if e.Tier != tier || !cpu.Supports(features, e.Level) {
			continue
		}
		if fn := e.Bitwise[op]; fn != nil {
			return fn, e.Name
		}
	}
	return nil, ""
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and diagnostics.
func (r *Registry) ListEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}

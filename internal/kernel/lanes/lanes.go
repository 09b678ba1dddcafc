// Package lanes provides portable vector kernels for every tier.
//
// Each kernel processes one register width of elements per block, the same
// shape a hardware kernel of that tier has, using plain Go on fixed-size
// sub-slices the compiler can bounds-check once per block. Entries are
// registered at priority 0 so that hardware kernels, where built, take
// precedence.
package lanes

import (
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
)

// Name identifies the entries registered by this package.
const Name = "lanes"

func init() {
	for _, tier := range registry.Tiers() {
		registry.Global.Register(NewEntry(tier))
	}
}

// NewEntry builds the kernel set for one tier.
func NewEntry(tier registry.Tier) registry.Entry {
	return registry.Entry{
		Name:     Name,
		Tier:     tier.Name,
		Priority: 0,
		Convert:  convertKernels(tier),
		Bitwise:  bitwiseKernels(tier),
	}
}

// Pairs returns the type pairs NewEntry provides a bulk kernel for, in
// Kinds order.
func Pairs() []numeric.Pair {
	var out []numeric.Pair
	for _, from := range numeric.Kinds {
		for _, to := range numeric.Kinds {
			p := numeric.Pair{From: from, To: to}
			if vectorizable(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func vectorizable(p numeric.Pair) bool {
	switch {
	case isReinterpret(p):
		return true
	case p.From.IsInteger() && p.To.IsInteger():
		return p.To.Size() > p.From.Size()
	case p.To == numeric.Float32:
		switch p.From {
		case numeric.Int8, numeric.Uint8, numeric.Int16, numeric.Uint16, numeric.Int32:
			return true
		}
	case p.To == numeric.Float64:
		return p.From == numeric.Int32 || p.From == numeric.Float32
	}
	return false
}

// isReinterpret reports whether every element of p converts to the same bit
// pattern.
func isReinterpret(p numeric.Pair) bool {
	if p.From == p.To {
		return true
	}
	return p.From.IsInteger() && p.To.IsInteger() && p.From.Size() == p.To.Size()
}

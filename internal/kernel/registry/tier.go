package registry

import (
	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/numeric"
)

// Tier is a level of vector support with a fixed register width.
type Tier struct {
	// Name identifies the tier (e.g., "avx2", "neon").
	Name string

	// Width is the register width in bytes.
	Width int

	// Level is the instruction set the CPU must report for the tier.
	Level cpu.SIMDLevel
}

// Lanes returns how many elements of the pair one register of t holds.
func (t Tier) Lanes(pair numeric.Pair) int {
	size := pair.MaxSize()
	if size == 0 {
		return 0
	}
	return t.Width / size
}

// Tiers returns this architecture's tier table, strictly decreasing in width.
// The returned slice is a copy.
func Tiers() []Tier {
	out := make([]Tier, len(archTiers))
	copy(out, archTiers)
	return out
}

// Supported returns the tiers of the table that features can run, widest first.
func Supported(features cpu.Features) []Tier {
	var out []Tier
	for _, t := range archTiers {
		if cpu.Supports(features, t.Level) {
			out = append(out, t)
		}
	}
	return out
}

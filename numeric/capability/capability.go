// Package capability reports which vector tiers the running CPU supports.
//
// The answer comes from the same one-time probe the conversion and bitwise
// operations use, so it also reflects NUMCONV_NO_SIMD.
package capability

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
)

// Tier is one usable level of vector support.
type Tier struct {
	// Name identifies the tier, e.g. "avx2" or "neon".
	Name string

	// Width is the register width in bytes.
	Width int
}

func (t Tier) String() string {
	return fmt.Sprintf("%s(%d)", t.Name, t.Width)
}

// Query returns the supported tiers in strictly decreasing width. Each tier
// is checked against the probed features on its own; none is assumed from a
// wider one. The result is empty when only scalar code can run.
func Query() []Tier {
	supported := registry.Supported(cpu.DetectFeatures())
	out := make([]Tier, len(supported))
	for i, t := range supported {
		out[i] = Tier{Name: t.Name, Width: t.Width}
	}
	return out
}

// Supports reports whether the tier with the given name is usable.
func Supports(name string) bool {
	for _, t := range Query() {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Widest returns the widest usable tier, or false when there is none.
func Widest() (Tier, bool) {
	tiers := Query()
	if len(tiers) == 0 {
		return Tier{}, false
	}
	return tiers[0], true
}

// Describe returns a one-line summary such as "amd64: avx2(32) sse2(16)".
func Describe() string {
	arch := runtime.GOARCH
	tiers := Query()
	if len(tiers) == 0 {
		return arch + ": scalar only"
	}
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.String()
	}
	return arch + ": " + strings.Join(names, " ")
}

package testutil

import (
	"testing"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
)

// ForceAllTiers overrides CPU detection so that every tier of the table
// whose kernels are safe to run on this machine is reported as supported.
// Tiers served only by portable kernels are always included; a tier with a
// hardware entry is included only when the CPU really has it. The override
// is removed when the test ends.
func ForceAllTiers(tb testing.TB) []registry.Tier {
	tb.Helper()
	cpu.ResetDetection()
	hw := cpu.DetectFeatures()
	tb.Cleanup(cpu.ResetDetection)

	f := hw
	f.ForceGeneric = false
	var tiers []registry.Tier
	for _, tier := range registry.Tiers() {
		if !cpu.Supports(hw, tier.Level) && hasHardwareEntry(tier.Name) {
			continue
		}
		setLevel(&f, tier.Level)
		tiers = append(tiers, tier)
	}
	cpu.SetForcedFeatures(f)
	return tiers
}

// ForceScalar overrides CPU detection to report no vector support until the
// test ends.
func ForceScalar(tb testing.TB) {
	tb.Helper()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	tb.Cleanup(cpu.ResetDetection)
}

func hasHardwareEntry(tier string) bool {
	for _, e := range registry.Global.ListEntries() {
		if e.Tier == tier && e.Level != cpu.SIMDNone {
			return true
		}
	}
	return false
}

func setLevel(f *cpu.Features, level cpu.SIMDLevel) {
	switch level {
	case cpu.SIMDSSE2:
		f.HasSSE2 = true
	case cpu.SIMDAVX:
		f.HasAVX = true
	case cpu.SIMDAVX2:
		f.HasAVX2 = true
	case cpu.SIMDAVX512:
		f.HasAVX512 = true
	case cpu.SIMDNEON:
		f.HasNEON = true
	}
}

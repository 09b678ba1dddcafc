//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
)

// init registers the NEON assembly kernels with the kernel registry.
//
// NEON is mandatory on ARMv8, so the entry is usable on every arm64 CPU
// unless SIMD is disabled.
//
// Priority: 20 (preferred over the portable lane kernels of the tier)
func init() {
	registry.Global.Register(registry.Entry{
		Name:     Name,
		Tier:     "neon",
		Level:    cpu.SIMDNEON,
		Priority: 20,
		Convert:  convertKernels(),
		Bitwise: map[numeric.BitwiseOp]registry.BitwiseBulk{
			numeric.OpAnd:    And,
			numeric.OpOr:     Or,
			numeric.OpXor:    Xor,
			numeric.OpAndNot: AndNot,
			numeric.OpNot:    Not,
		},
	})
}

func convertKernels() map[numeric.Pair]registry.ConvertBulk {
	m := map[numeric.Pair]registry.ConvertBulk{
		numeric.PairOf[int32, float32](): registry.ByteConvert(int32ToFloat32NEON, 4, 4),
	}

	registry.AddWidening(m, false, 1, 2, zx8to16NEON)
	registry.AddWidening(m, false, 1, 4, zx8to32NEON)
	registry.AddWidening(m, false, 1, 8, zx8to64NEON)
	registry.AddWidening(m, false, 2, 4, zx16to32NEON)
	registry.AddWidening(m, false, 2, 8, zx16to64NEON)
	registry.AddWidening(m, false, 4, 8, zx32to64NEON)

	registry.AddWidening(m, true, 1, 2, sx8to16NEON)
	registry.AddWidening(m, true, 1, 4, sx8to32NEON)
	registry.AddWidening(m, true, 1, 8, sx8to64NEON)
	registry.AddWidening(m, true, 2, 4, sx16to32NEON)
	registry.AddWidening(m, true, 2, 8, sx16to64NEON)
	registry.AddWidening(m, true, 4, 8, sx32to64NEON)
	return m
}

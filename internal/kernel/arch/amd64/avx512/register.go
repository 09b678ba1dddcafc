//go:build amd64 && !purego

package avx512

import (
	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
)

// init registers the AVX-512 assembly kernels with the kernel registry.
//
// Priority: 20 (preferred over the portable lane kernels of the tier)
func init() {
	registry.Global.Register(registry.Entry{
		Name:     Name,
		Tier:     "avx512",
		Level:    cpu.SIMDAVX512,
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
		numeric.PairOf[int32, float32](): registry.ByteConvert(int32ToFloat32AVX512, 4, 4),
	}

	registry.AddWidening(m, false, 1, 2, zx8to16AVX512)
	registry.AddWidening(m, false, 1, 4, zx8to32AVX512)
	registry.AddWidening(m, false, 1, 8, zx8to64AVX512)
	registry.AddWidening(m, false, 2, 4, zx16to32AVX512)
	registry.AddWidening(m, false, 2, 8, zx16to64AVX512)
	registry.AddWidening(m, false, 4, 8, zx32to64AVX512)

	registry.AddWidening(m, true, 1, 2, sx8to16AVX512)
	registry.AddWidening(m, true, 1, 4, sx8to32AVX512)
	registry.AddWidening(m, true, 1, 8, sx8to64AVX512)
	registry.AddWidening(m, true, 2, 4, sx16to32AVX512)
	registry.AddWidening(m, true, 2, 8, sx16to64AVX512)
	registry.AddWidening(m, true, 4, 8, sx32to64AVX512)
	return m
}

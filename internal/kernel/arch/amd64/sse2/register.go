//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
)

// init registers the SSE2 assembly kernels with the kernel registry.
//
// Priority: 20 (preferred over the portable lane kernels of the tier)
func init() {
	registry.Global.Register(registry.Entry{
		Name:     Name,
		Tier:     "sse2",
		Level:    cpu.SIMDSSE2,
		Priority: 20,
		Convert: map[numeric.Pair]registry.ConvertBulk{
			numeric.PairOf[int32, float32](): registry.ByteConvert(int32ToFloat32SSE2, 4, 4),
		},
		Bitwise: map[numeric.BitwiseOp]registry.BitwiseBulk{
			numeric.OpAnd:    And,
			numeric.OpOr:     Or,
			numeric.OpXor:    Xor,
			numeric.OpAndNot: AndNot,
			numeric.OpNot:    Not,
		},
	})
}

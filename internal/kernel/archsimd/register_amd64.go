//go:build amd64 && goexperiment.simd && !purego

package archsimd

import (
	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
)

// init registers the archsimd kernels with the kernel registry.
//
// Priority: 30 (preferred over the assembly and portable kernels of the same
// tier when the toolchain provides the intrinsics)
func init() {
	registry.Global.Register(registry.Entry{
		Name:     Name,
		Tier:     "avx512",
		Level:    cpu.SIMDAVX512,
		Priority: 30,
		Convert: map[numeric.Pair]registry.ConvertBulk{
			numeric.PairOf[int32, float32](): Int32ToFloat32x16,
		},
		Bitwise: map[numeric.BitwiseOp]registry.BitwiseBulk{
			numeric.OpAnd:    And512,
			numeric.OpOr:     Or512,
			numeric.OpXor:    Xor512,
			numeric.OpAndNot: AndNot512,
			numeric.OpNot:    Not512,
		},
	})

	registry.Global.Register(registry.Entry{
		Name:     Name,
		Tier:     "avx2",
		Level:    cpu.SIMDAVX2,
		Priority: 30,
		Convert: map[numeric.Pair]registry.ConvertBulk{
			numeric.PairOf[int32, float32](): Int32ToFloat32x8,
		},
		Bitwise: map[numeric.BitwiseOp]registry.BitwiseBulk{
			numeric.OpAnd:    And256,
			numeric.OpOr:     Or256,
			numeric.OpXor:    Xor256,
			numeric.OpAndNot: AndNot256,
			numeric.OpNot:    Not256,
		},
	})

	registry.Global.Register(registry.Entry{
		Name:     Name,
		Tier:     "sse2",
		Level:    cpu.SIMDAVX,
		Priority: 30,
		Bitwise: map[numeric.BitwiseOp]registry.BitwiseBulk{
			numeric.OpAnd:    And128,
			numeric.OpOr:     Or128,
			numeric.OpXor:    Xor128,
			numeric.OpAndNot: AndNot128,
			numeric.OpNot:    Not128,
		},
	})
}

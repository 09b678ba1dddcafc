package lanes

import (
	"encoding/binary"

	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
)

func bitwiseKernels(tier registry.Tier) map[numeric.BitwiseOp]registry.BitwiseBulk {
	w := tier.Width
	return map[numeric.BitwiseOp]registry.BitwiseBulk{
		numeric.OpAnd:    wordKernel(w, func(x, y uint64) uint64 { return x & y }),
		numeric.OpOr:     wordKernel(w, func(x, y uint64) uint64 { return x | y }),
		numeric.OpXor:    wordKernel(w, func(x, y uint64) uint64 { return x ^ y }),
		numeric.OpAndNot: wordKernel(w, func(x, y uint64) uint64 { return x &^ y }),
		numeric.OpNot:    notKernel(w),
	}
}

// wordKernel processes width bytes per block as width/8 little-endian words.
// Byte order does not matter for bitwise operations; the fixed order only
// keeps loads and stores free of alignment requirements.
func wordKernel(width int, f func(x, y uint64) uint64) registry.BitwiseBulk {
	return func(dst, a, b []byte) {
		a = a[:len(dst)]
		b = b[:len(dst)]
		for off := 0; off < len(dst); off += width {
			d := dst[off : off+width : off+width]
			x := a[off : off+width : off+width]
			y := b[off : off+width : off+width]
			for w := 0; w < width; w += 8 {
				binary.LittleEndian.PutUint64(d[w:], f(binary.LittleEndian.Uint64(x[w:]), binary.LittleEndian.Uint64(y[w:])))
			}
		}
	}
}

func notKernel(width int) registry.BitwiseBulk {
	return func(dst, a, _ []byte) {
		a = a[:len(dst)]
		for off := 0; off < len(dst); off += width {
			d := dst[off : off+width : off+width]
			x := a[off : off+width : off+width]
			for w := 0; w < width; w += 8 {
				binary.LittleEndian.PutUint64(d[w:], ^binary.LittleEndian.Uint64(x[w:]))
			}
		}
	}
}

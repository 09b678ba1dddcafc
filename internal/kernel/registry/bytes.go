package registry

import (
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// ByteKernel is an assembly-style kernel over raw buffers. It reads len(src)
// bytes and writes the matching prefix of dst.
type ByteKernel func(dst, src []byte)

// ByteConvert adapts a ByteKernel to ConvertBulk for elements of fromSize and
// toSize bytes. The views are passed as their backing bytes, so the kernel
// may load at any alignment.
func ByteConvert(kernel ByteKernel, fromSize, toSize int) ConvertBulk {
	return func(src, dst view.View, n int) {
		kernel(dst.Bytes()[:n*toSize], src.Bytes()[:n*fromSize])
	}
}

// IntegerPairs returns every integer pair whose source has fromSize bytes and
// the given signedness and whose destination has toSize bytes.
//
// Widening to either signedness extends the same way: sign extension from
// signed sources and zero extension from unsigned ones.
func IntegerPairs(signed bool, fromSize, toSize int) []numeric.Pair {
	var out []numeric.Pair
	for _, from := range numeric.Kinds {
		if !from.IsInteger() || from.IsSigned() != signed || from.Size() != fromSize {
			continue
		}
		for _, to := range numeric.Kinds {
			if to.IsInteger() && to.Size() == toSize {
				out = append(out, numeric.Pair{From: from, To: to})
			}
		}
	}
	return out
}

// AddWidening registers kernel in m for every pair IntegerPairs returns.
func AddWidening(m map[numeric.Pair]ConvertBulk, signed bool, fromSize, toSize int, kernel ByteKernel) {
	fn := ByteConvert(kernel, fromSize, toSize)
	for _, p := range IntegerPairs(signed, fromSize, toSize) {
		m[p] = fn
	}
}

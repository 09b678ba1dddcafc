//go:build amd64 && !purego

package avx2

// Assembly function declarations (implemented in convert.s). Each kernel
// consumes len(src) bytes, which must be a whole number of source blocks, and
// fills one 32-byte register of dst per block.

//go:noescape
func int32ToFloat32AVX2(dst, src []byte)

//go:noescape
func zx8to16AVX2(dst, src []byte)

//go:noescape
func zx8to32AVX2(dst, src []byte)

//go:noescape
func zx8to64AVX2(dst, src []byte)

//go:noescape
func zx16to32AVX2(dst, src []byte)

//go:noescape
func zx16to64AVX2(dst, src []byte)

//go:noescape
func zx32to64AVX2(dst, src []byte)

//go:noescape
func sx8to16AVX2(dst, src []byte)

//go:noescape
func sx8to32AVX2(dst, src []byte)

//go:noescape
func sx8to64AVX2(dst, src []byte)

//go:noescape
func sx16to32AVX2(dst, src []byte)

//go:noescape
func sx16to64AVX2(dst, src []byte)

//go:noescape
func sx32to64AVX2(dst, src []byte)

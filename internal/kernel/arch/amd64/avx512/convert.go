//go:build amd64 && !purego

package avx512

// Assembly function declarations (implemented in convert.s). Each kernel
// consumes len(src) bytes, which must be a whole number of source blocks, and
// fills one 64-byte register of dst per block.

//go:noescape
func int32ToFloat32AVX512(dst, src []byte)

//go:noescape
func zx8to16AVX512(dst, src []byte)

//go:noescape
func zx8to32AVX512(dst, src []byte)

//go:noescape
func zx8to64AVX512(dst, src []byte)

//go:noescape
func zx16to32AVX512(dst, src []byte)

//go:noescape
func zx16to64AVX512(dst, src []byte)

//go:noescape
func zx32to64AVX512(dst, src []byte)

//go:noescape
func sx8to16AVX512(dst, src []byte)

//go:noescape
func sx8to32AVX512(dst, src []byte)

//go:noescape
func sx8to64AVX512(dst, src []byte)

//go:noescape
func sx16to32AVX512(dst, src []byte)

//go:noescape
func sx16to64AVX512(dst, src []byte)

//go:noescape
func sx32to64AVX512(dst, src []byte)

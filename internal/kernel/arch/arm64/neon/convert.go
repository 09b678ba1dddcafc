//go:build arm64 && !purego

package neon

// Assembly function declarations (implemented in convert.s). Each kernel
// consumes len(src) bytes, which must be a whole number of source blocks, and
// fills one 16-byte register of dst per block.

//go:noescape
func int32ToFloat32NEON(dst, src []byte)

//go:noescape
func zx8to16NEON(dst, src []byte)

//go:noescape
func zx8to32NEON(dst, src []byte)

//go:noescape
func zx8to64NEON(dst, src []byte)

//go:noescape
func zx16to32NEON(dst, src []byte)

//go:noescape
func zx16to64NEON(dst, src []byte)

//go:noescape
func zx32to64NEON(dst, src []byte)

//go:noescape
func sx8to16NEON(dst, src []byte)

//go:noescape
func sx8to32NEON(dst, src []byte)

//go:noescape
func sx8to64NEON(dst, src []byte)

//go:noescape
func sx16to32NEON(dst, src []byte)

//go:noescape
func sx16to64NEON(dst, src []byte)

//go:noescape
func sx32to64NEON(dst, src []byte)

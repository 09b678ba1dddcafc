// Package neon provides the 128-bit assembly kernels of the neon tier.
//
// Bitwise kernels use VAND, VORR and VEOR on 16-byte registers. Integer
// widening chains SXTL/UXTL steps, each doubling the lane width, and
// int32->float32 uses SCVTF, which rounds to nearest even under the default
// FPCR. The widening and conversion steps are emitted as WORD encodings
// with fixed registers.
package neon

// Name identifies the entries registered by this package.
const Name = "neon"

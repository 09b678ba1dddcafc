// Package avx512 provides the 512-bit assembly kernels of the avx512 tier.
//
// The tier requires AVX-512 F, BW and VL. Bitwise kernels use the EVEX
// VPANDQ family on ZMM registers, integer widening uses VPMOVZX/VPMOVSX with
// a memory source and int32->float32 uses VCVTDQ2PS.
package avx512

// Name identifies the entries registered by this package.
const Name = "avx512"

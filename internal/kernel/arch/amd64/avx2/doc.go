// Package avx2 provides the 256-bit assembly kernels of the avx2 tier.
//
// Bitwise kernels process 32 bytes per iteration with VPAND, VPOR, VPXOR and
// VPANDN. Integer widening uses the VPMOVZX and VPMOVSX families with a memory
// source, which load exactly the bytes one output register needs.
// int32->float32 uses VCVTDQ2PS, which rounds to nearest even under the
// default MXCSR.
package avx2

// Name identifies the entries registered by this package.
const Name = "avx2"

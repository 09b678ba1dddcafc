// Package archsimd registers hardware vector kernels built on the
// simd/archsimd intrinsics.
//
// The kernels only exist on amd64 when the toolchain is built with
// GOEXPERIMENT=simd and the purego tag is not set. Elsewhere the package is
// empty and the assembly kernels of internal/kernel/arch serve the tiers.
//
// Entries registered here carry the instruction set they execute in
// Entry.Level, so the registry skips them on CPUs that report the tier but
// not the instructions:
//
//   - avx512 tier: 512-bit AND/OR/XOR/AND-NOT/NOT and int32->float32 (AVX-512)
//   - avx2 tier: 256-bit AND/OR/XOR/AND-NOT/NOT and int32->float32 (AVX2)
//   - sse2 tier: 128-bit AND/OR/XOR/AND-NOT/NOT in VEX encoding (AVX)
package archsimd

// Name identifies the entries registered by this package.
const Name = "archsimd"

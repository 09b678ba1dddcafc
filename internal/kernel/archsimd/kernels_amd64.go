//go:build amd64 && goexperiment.simd && !purego

package archsimd

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-numconv/internal/view"
)

var allOnes [64]byte

func init() {
	for i := range allOnes {
		allOnes[i] = 0xff
	}
}

// Int32ToFloat32x8 converts eight int32 lanes per iteration with VCVTDQ2PS,
// which rounds to nearest even like the Go conversion.
func Int32ToFloat32x8(src, dst view.View, n int) {
	s := view.MustSlice[int32](src)[:n]
	d := view.MustSlice[float32](dst)[:n]
	for i := 0; i+8 <= n; i += 8 {
		archsimd.LoadInt32x8Slice(s[i:]).ConvertToFloat32().StoreSlice(d[i:])
	}
}

// Int32ToFloat32x16 is Int32ToFloat32x8 on 512-bit registers.
func Int32ToFloat32x16(src, dst view.View, n int) {
	s := view.MustSlice[int32](src)[:n]
	d := view.MustSlice[float32](dst)[:n]
	for i := 0; i+16 <= n; i += 16 {
		archsimd.LoadInt32x16Slice(s[i:]).ConvertToFloat32().StoreSlice(d[i:])
	}
}

// And512 computes dst = a & b, 64 bytes per iteration.
func And512(dst, a, b []byte) {
	for i := 0; i+64 <= len(dst); i += 64 {
		archsimd.LoadUint8x64Slice(a[i:]).And(archsimd.LoadUint8x64Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Or512 computes dst = a | b, 64 bytes per iteration.
func Or512(dst, a, b []byte) {
	for i := 0; i+64 <= len(dst); i += 64 {
		archsimd.LoadUint8x64Slice(a[i:]).Or(archsimd.LoadUint8x64Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Xor512 computes dst = a ^ b, 64 bytes per iteration.
func Xor512(dst, a, b []byte) {
	for i := 0; i+64 <= len(dst); i += 64 {
		archsimd.LoadUint8x64Slice(a[i:]).Xor(archsimd.LoadUint8x64Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// AndNot512 computes dst = a &^ b, 64 bytes per iteration.
func AndNot512(dst, a, b []byte) {
	for i := 0; i+64 <= len(dst); i += 64 {
		archsimd.LoadUint8x64Slice(a[i:]).AndNot(archsimd.LoadUint8x64Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Not512 computes dst = ^a, 64 bytes per iteration.
func Not512(dst, a, _ []byte) {
	ones := archsimd.LoadUint8x64Slice(allOnes[:64])
	for i := 0; i+64 <= len(dst); i += 64 {
		archsimd.LoadUint8x64Slice(a[i:]).Xor(ones).StoreSlice(dst[i:])
	}
}

// And256 computes dst = a & b, 32 bytes per iteration.
func And256(dst, a, b []byte) {
	for i := 0; i+32 <= len(dst); i += 32 {
		archsimd.LoadUint8x32Slice(a[i:]).And(archsimd.LoadUint8x32Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Or256 computes dst = a | b, 32 bytes per iteration.
func Or256(dst, a, b []byte) {
	for i := 0; i+32 <= len(dst); i += 32 {
		archsimd.LoadUint8x32Slice(a[i:]).Or(archsimd.LoadUint8x32Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Xor256 computes dst = a ^ b, 32 bytes per iteration.
func Xor256(dst, a, b []byte) {
	for i := 0; i+32 <= len(dst); i += 32 {
		archsimd.LoadUint8x32Slice(a[i:]).Xor(archsimd.LoadUint8x32Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// AndNot256 computes dst = a &^ b, 32 bytes per iteration.
func AndNot256(dst, a, b []byte) {
	for i := 0; i+32 <= len(dst); i += 32 {
		archsimd.LoadUint8x32Slice(a[i:]).AndNot(archsimd.LoadUint8x32Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Not256 computes dst = ^a, 32 bytes per iteration.
func Not256(dst, a, _ []byte) {
	ones := archsimd.LoadUint8x32Slice(allOnes[:32])
	for i := 0; i+32 <= len(dst); i += 32 {
		archsimd.LoadUint8x32Slice(a[i:]).Xor(ones).StoreSlice(dst[i:])
	}
}

// And128 computes dst = a & b, 16 bytes per iteration.
func And128(dst, a, b []byte) {
	for i := 0; i+16 <= len(dst); i += 16 {
		archsimd.LoadUint8x16Slice(a[i:]).And(archsimd.LoadUint8x16Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Or128 computes dst = a | b, 16 bytes per iteration.
func Or128(dst, a, b []byte) {
	for i := 0; i+16 <= len(dst); i += 16 {
		archsimd.LoadUint8x16Slice(a[i:]).Or(archsimd.LoadUint8x16Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Xor128 computes dst = a ^ b, 16 bytes per iteration.
func Xor128(dst, a, b []byte) {
	for i := 0; i+16 <= len(dst); i += 16 {
		archsimd.LoadUint8x16Slice(a[i:]).Xor(archsimd.LoadUint8x16Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// AndNot128 computes dst = a &^ b, 16 bytes per iteration.
func AndNot128(dst, a, b []byte) {
	for i := 0; i+16 <= len(dst); i += 16 {
		archsimd.LoadUint8x16Slice(a[i:]).AndNot(archsimd.LoadUint8x16Slice(b[i:])).StoreSlice(dst[i:])
	}
}

// Not128 computes dst = ^a, 16 bytes per iteration.
func Not128(dst, a, _ []byte) {
	ones := archsimd.LoadUint8x16Slice(allOnes[:16])
	for i := 0; i+16 <= len(dst); i += 16 {
		archsimd.LoadUint8x16Slice(a[i:]).Xor(ones).StoreSlice(dst[i:])
	}
}

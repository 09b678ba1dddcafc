// Package testutil provides deterministic fixtures and comparison helpers for
// the kernel and API tests.
package testutil

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// NewRand returns a PCG generator seeded from seed, so every test run sees
// the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomBytes returns n bytes drawn from a generator seeded with seed.
func RandomBytes(seed uint64, n int) []byte {
	out := make([]byte, n)
	fill(out, NewRand(seed))
	return out
}

// Random returns n elements whose bit patterns are uniformly random. Float
// results include NaNs, infinities and subnormals.
func Random[T numeric.Number](seed uint64, n int) []T {
	out := make([]T, n)
	fill(view.Of(out).Bytes(), NewRand(seed))
	return out
}

func fill(b []byte, r *rand.Rand) {
	for i := 0; i+8 <= len(b); i += 8 {
		v := r.Uint64()
		for j := range 8 {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	for i := len(b) &^ 7; i < len(b); i++ {
		b[i] = byte(r.Uint32())
	}
}

// Boundary returns the edge values of T: zero, one, minus one where
// representable, the extremes, and for floats the non-finite values, the
// signed zero and the limits of the integer kinds.
func Boundary[T numeric.Number]() []T {
	k := numeric.KindOf[T]()
	switch {
	case k.IsFloat():
		vals := []float64{
			0, math.Copysign(0, -1), 1, -1, 0.5, -0.5, 1.5, -2.5,
			math.NaN(), math.Inf(1), math.Inf(-1),
			127, 128, -128, -129, 255, 256,
			32767, 32768, -32768, -32769, 65535, 65536,
			math.MaxInt32, -math.MaxInt32 - 1, math.MaxUint32, 1 << 32,
			1 << 63, -(1 << 63), 1 << 64,
			math.MaxFloat32, math.SmallestNonzeroFloat32,
		}
		if k == numeric.Float64 {
			vals = append(vals, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64)
		}
		out := make([]T, len(vals))
		for i, v := range vals {
			out[i] = T(v)
		}
		return out
	case k.IsSigned():
		bits := k.Size() * 8
		minV := int64(-1) << (bits - 1)
		maxV := -(minV + 1)
		vals := []int64{0, 1, -1, minV, maxV, minV + 1, maxV - 1}
		out := make([]T, len(vals))
		for i, v := range vals {
			out[i] = T(v)
		}
		return out
	default:
		bits := k.Size() * 8
		maxV := uint64(math.MaxUint64) >> (64 - bits)
		vals := []uint64{0, 1, maxV, maxV - 1, maxV >> 1, maxV>>1 + 1}
		out := make([]T, len(vals))
		for i, v := range vals {
			out[i] = T(v)
		}
		return out
	}
}

// RandomView returns a view over n random elements of kind k.
func RandomView(k numeric.Kind, seed uint64, n int) (view.View, error) {
	v, err := view.Alloc(k, n)
	if err != nil {
		return view.View{}, err
	}
	fill(v.Bytes(), NewRand(seed))
	return v, nil
}

// Package scalar provides the element-at-a-time kernels.
//
// The scalar kernels are always available and handle every type pair and
// every bitwise operation. The dispatcher runs them over the remainder of a
// buffer after a vector kernel has processed the bulk, or over the whole
// buffer when no tier applies. They are also the reference the vector
// kernels must match bit for bit.
package scalar

import (
	"math"

	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// ConvertRange converts count elements of src starting at start into the
// same positions of dst. It returns a *numeric.RangeError if the range does
// not fit either view.
type ConvertRange func(src, dst view.View, start, count int) error

var convertTable [numeric.Float64 + 1][numeric.Float64 + 1]ConvertRange

func init() {
	registerFrom[int8]()
	registerFrom[int16]()
	registerFrom[int32]()
	registerFrom[int64]()
	registerFrom[uint8]()
	registerFrom[uint16]()
	registerFrom[uint32]()
	registerFrom[uint64]()
	registerFrom[float32]()
	registerFrom[float64]()
}

func registerFrom[F numeric.Number]() {
	registerPair[F, int8]()
	registerPair[F, int16]()
	registerPair[F, int32]()
	registerPair[F, int64]()
	registerPair[F, uint8]()
	registerPair[F, uint16]()
	registerPair[F, uint32]()
	registerPair[F, uint64]()
	registerPair[F, float32]()
	registerPair[F, float64]()
}

func registerPair[F, T numeric.Number]() {
	convertTable[numeric.KindOf[F]()][numeric.KindOf[T]()] = convertRange[F, T]
}

// Convert returns the scalar conversion kernel for pair.
func Convert(pair numeric.Pair) (ConvertRange, error) {
	if !pair.Valid() {
		return nil, &numeric.UnsupportedTypePairError{From: pair.From.String(), To: pair.To.String()}
	}
	return convertTable[pair.From][pair.To], nil
}

func convertRange[F, T numeric.Number](src, dst view.View, start, count int) error {
	if err := src.CheckRange(start, count); err != nil {
		return err
	}
	if err := dst.CheckRange(start, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	s, err := view.Slice[F](src)
	if err != nil {
		return err
	}
	d, err := view.Slice[T](dst)
	if err != nil {
		return err
	}
	ConvertSlice(d[start:start+count], s[start:start+count])
	return nil
}

// ConvertSlice converts src into dst element by element; len(dst) must be at
// least len(src).
//
// Semantics:
//   - integer to integer wraps (two's complement truncation; sign extension
//     from signed sources, zero extension from unsigned ones)
//   - integer to float and float64 to float32 round to nearest even
//   - float to integer truncates toward zero, maps NaN to 0 and saturates
//     values outside the target range to its minimum or maximum
//
// dst and src may be the same memory when F and T have the same width.
func ConvertSlice[F, T numeric.Number](dst []T, src []F) {
	to := numeric.KindOf[T]()
	if numeric.KindOf[F]().IsFloat() && to.IsInteger() {
		b := boundsOf(to)
		for i, v := range src {
			dst[i] = saturate[T](float64(v), b)
		}
		return
	}

	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = T(v)
	}
}

// bounds holds the float64 limits of an integer kind: values in [lo, hi)
// convert exactly after truncation.
type bounds struct {
	lo, hi   float64
	min, max int64
	umax     uint64
	signed   bool
}

func boundsOf(k numeric.Kind) bounds {
	bits := k.Size() * 8
	if k.IsSigned() {
		return bounds{
			lo:     -math.Ldexp(1, bits-1),
			hi:     math.Ldexp(1, bits-1),
			min:    -1 << (bits - 1),
			max:    1<<(bits-1) - 1,
			signed: true,
		}
	}
	return bounds{
		hi:   math.Ldexp(1, bits),
		umax: math.MaxUint64 >> (64 - bits),
	}
}

func saturate[T numeric.Number](f float64, b bounds) T {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if b.signed {
		switch {
		case f < b.lo:
			return T(b.min)
		case f >= b.hi:
			return T(b.max)
		default:
			return T(int64(f))
		}
	}
	switch {
	case f <= 0:
		return 0
	case f >= b.hi:
		return T(b.umax)
	default:
		return T(uint64(f))
	}
}

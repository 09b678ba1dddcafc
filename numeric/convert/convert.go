// Package convert bulk-converts numeric slices from one element type to
// another.
//
// Conversion follows Go's own conversion rules where they are fully defined
// and fixes the cases Go leaves to the platform:
//
//   - integer to integer wraps (two's complement truncation)
//   - integer to float and float64 to float32 round to nearest even
//   - float to integer truncates toward zero; NaN becomes 0 and values
//     outside the target range saturate to its minimum or maximum
//
// The widest vector tier the CPU supports processes the bulk of the slice and
// a scalar loop handles the remainder. The result never depends on which tier
// ran.
package convert

import (
	"fmt"

	"github.com/cwbudde/algo-numconv/internal/dispatch"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// Convert writes src[i] converted to T into dst[i] for every i.
//
// src and dst must have the same length; otherwise Convert returns a
// *numeric.LengthMismatchError and writes nothing. src and dst may be the
// same memory only when F and T have the same width and the slices cover
// exactly the same elements; any other overlap yields numeric.ErrOverlap.
func Convert[F, T numeric.Number](src []F, dst []T, opts ...numeric.Option) error {
	return dispatch.Convert(view.Of(src), view.Of(dst), numeric.ApplyOptions(opts...))
}

// ConvertAny is Convert for callers that only know the element types at run
// time. src and dst must be slices of one of the ten predeclared fixed-width
// numeric types; anything else yields a *numeric.UnsupportedTypePairError
// before any write.
func ConvertAny(src, dst any, opts ...numeric.Option) error {
	sv, okSrc := viewOf(src)
	dv, okDst := viewOf(dst)
	if !okSrc || !okDst {
		return &numeric.UnsupportedTypePairError{From: elemName(src), To: elemName(dst)}
	}
	return dispatch.Convert(sv, dv, numeric.ApplyOptions(opts...))
}

// PlanFor reports how Convert would split n elements of F->T between a vector
// tier and the scalar kernel under opts.
func PlanFor[F, T numeric.Number](n int, opts ...numeric.Option) numeric.Plan {
	return dispatch.PlanConvert(numeric.PairOf[F, T](), n, numeric.ApplyOptions(opts...))
}

func viewOf(s any) (view.View, bool) {
	switch s := s.(type) {
	case []int8:
		return view.Of(s), true
	case []int16:
		return view.Of(s), true
	case []int32:
		return view.Of(s), true
	case []int64:
		return view.Of(s), true
	case []uint8:
		return view.Of(s), true
	case []uint16:
		return view.Of(s), true
	case []uint32:
		return view.Of(s), true
	case []uint64:
		return view.Of(s), true
	case []float32:
		return view.Of(s), true
	case []float64:
		return view.Of(s), true
	default:
		return view.View{}, false
	}
}

func elemName(s any) string {
	if v, ok := viewOf(s); ok {
		return v.Kind().String()
	}
	return fmt.Sprintf("%T", s)
}

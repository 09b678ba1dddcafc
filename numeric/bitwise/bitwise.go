// Package bitwise applies elementwise bitwise operations to integer slices
// using the widest vector tier the CPU supports.
//
// All slices of one call must have the same length; otherwise the function
// returns a *numeric.LengthMismatchError and writes nothing. dst may be the
// same slice as an input; any other overlap yields numeric.ErrOverlap.
package bitwise

import (
	"github.com/cwbudde/algo-numconv/internal/dispatch"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// And sets dst[i] = a[i] & b[i].
func And[T numeric.Integer](a, b, dst []T, opts ...numeric.Option) error {
	return binaryOp(numeric.OpAnd, a, b, dst, opts)
}

// Or sets dst[i] = a[i] | b[i].
func Or[T numeric.Integer](a, b, dst []T, opts ...numeric.Option) error {
	return binaryOp(numeric.OpOr, a, b, dst, opts)
}

// Xor sets dst[i] = a[i] ^ b[i].
func Xor[T numeric.Integer](a, b, dst []T, opts ...numeric.Option) error {
	return binaryOp(numeric.OpXor, a, b, dst, opts)
}

// AndNot sets dst[i] = a[i] &^ b[i].
func AndNot[T numeric.Integer](a, b, dst []T, opts ...numeric.Option) error {
	return binaryOp(numeric.OpAndNot, a, b, dst, opts)
}

// Not sets dst[i] = ^a[i].
func Not[T numeric.Integer](a, dst []T, opts ...numeric.Option) error {
	return dispatch.Bitwise(numeric.OpNot, view.Of(a), view.View{}, view.Of(dst), numeric.ApplyOptions(opts...))
}

// PlanFor reports how op would split n elements of T between a vector tier
// and the scalar kernel under opts.
func PlanFor[T numeric.Integer](op numeric.BitwiseOp, n int, opts ...numeric.Option) numeric.Plan {
	return dispatch.PlanBitwise(op, numeric.KindOf[T](), n, numeric.ApplyOptions(opts...))
}

func binaryOp[T numeric.Integer](op numeric.BitwiseOp, a, b, dst []T, opts []numeric.Option) error {
	return dispatch.Bitwise(op, view.Of(a), view.Of(b), view.Of(dst), numeric.ApplyOptions(opts...))
}

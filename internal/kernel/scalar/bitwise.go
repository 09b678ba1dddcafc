package scalar

import (
	"fmt"

	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// BitwiseRange applies an operation to count elements starting at start.
// b is ignored for unary operations.
//
// AND, OR, XOR, AND-NOT and NOT act on each bit independently, so the range
// is processed one byte at a time; the result is identical to processing
// whole elements of any integer width.
type BitwiseRange func(a, b, dst view.View, start, count int) error

// Bitwise returns the scalar kernel for op.
func Bitwise(op numeric.BitwiseOp) (BitwiseRange, error) {
	switch op {
	case numeric.OpAnd, numeric.OpOr, numeric.OpXor, numeric.OpAndNot, numeric.OpNot:
	default:
		return nil, fmt.Errorf("scalar: unknown bitwise operation %d", op)
	}

	return func(a, b, dst view.View, start, count int) error {
		if err := a.CheckRange(start, count); err != nil {
			return err
		}
		if !op.Unary() {
			if err := b.CheckRange(start, count); err != nil {
				return err
			}
		}
		if err := dst.CheckRange(start, count); err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		size := dst.Size()
		lo, hi := start*size, (start+count)*size
		d := dst.Bytes()[lo:hi]
		x := a.Bytes()[lo:hi]
		if op.Unary() {
			BitwiseBytes(op, d, x, nil)
			return nil
		}
		BitwiseBytes(op, d, x, b.Bytes()[lo:hi])
		return nil
	}, nil
}

// BitwiseBytes applies op to every byte of dst. y is unused for NOT.
func BitwiseBytes(op numeric.BitwiseOp, dst, x, y []byte) {
	x = x[:len(dst)]
	switch op {
	case numeric.OpAnd:
		y = y[:len(dst)]
		for i := range dst {
			dst[i] = x[i] & y[i]
		}
	case numeric.OpOr:
		y = y[:len(dst)]
		for i := range dst {
			dst[i] = x[i] | y[i]
		}
	case numeric.OpXor:
		y = y[:len(dst)]
		for i := range dst {
			dst[i] = x[i] ^ y[i]
		}
	case numeric.OpAndNot:
		y = y[:len(dst)]
		for i := range dst {
			dst[i] = x[i] &^ y[i]
		}
	case numeric.OpNot:
		for i := range dst {
			dst[i] = ^x[i]
		}
	}
}

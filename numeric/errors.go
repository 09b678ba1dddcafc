package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is reported when the buffers of one operation differ in
	// element count. Nothing is written when it is returned.
	ErrLengthMismatch = errors.New("numeric: length mismatch")

	// ErrUnsupportedTypePair is reported when no conversion semantics exist for
	// the requested element types.
	ErrUnsupportedTypePair = errors.New("numeric: unsupported type pair")

	// ErrRange reports an out-of-range element access on the scalar path. It
	// indicates a broken plan, not a caller mistake.
	ErrRange = errors.New("numeric: index out of range")

	// ErrOverlap is reported when source and destination share memory in any
	// way other than an in-place conversion between equal-width elements.
	ErrOverlap = errors.New("numeric: source and destination overlap")

	// ErrReinterpret is reported when a view cannot be read as another element
	// type because of width or alignment.
	ErrReinterpret = errors.New("numeric: invalid reinterpretation")
)

// LengthMismatchError describes the counts that disagreed.
type LengthMismatchError struct {
	Op   string
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("numeric: %s: length mismatch: want %d elements, got %d", e.Op, e.Want, e.Got)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// UnsupportedTypePairError names the rejected source and destination types.
type UnsupportedTypePairError struct {
	From string
	To   string
}

func (e *UnsupportedTypePairError) Error() string {
	return fmt.Sprintf("numeric: unsupported type pair %s->%s", e.From, e.To)
}

func (e *UnsupportedTypePairError) Unwrap() error { return ErrUnsupportedTypePair }

// RangeError reports the offending index and the view length.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("numeric: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrRange }

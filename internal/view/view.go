// Package view describes borrowed, contiguous numeric buffers.
//
// A View records the base address, element count, element width and kind of
// a caller-owned slice. It owns nothing and must not outlive the call that
// created it; the slice it was built from keeps the memory alive.
//
// # Reinterpretation contract
//
// Kernels that treat one element type as another (same-width reinterpretation,
// bytewise bitwise operations) go through Bytes or Slice instead of raw
// pointer casts. Bytes exposes the whole extent as []byte, which is valid for
// every view. Slice[T] exposes the extent as []T only when T has the view's
// element width and the base address is aligned for T; otherwise it returns
// numeric.ErrReinterpret. Views built by Of always satisfy both conditions
// for types of their own width.
package view

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-numconv/numeric"
)

// View is a descriptor of a contiguous run of fixed-width elements.
type View struct {
	base unsafe.Pointer
	n    int
	size int
	kind numeric.Kind
}

// Of returns a view over s. The view is only valid while s is reachable.
func Of[T numeric.Number](s []T) View {
	var zero T
	return View{
		base: unsafe.Pointer(unsafe.SliceData(s)),
		n:    len(s),
		size: int(unsafe.Sizeof(zero)),
		kind: numeric.KindOf[T](),
	}
}

// Len returns the number of elements.
func (v View) Len() int { return v.n }

// Size returns the element width in bytes.
func (v View) Size() int { return v.size }

// Kind returns the element kind.
func (v View) Kind() numeric.Kind { return v.kind }

// ByteLen returns the extent in bytes.
func (v View) ByteLen() int { return v.n * v.size }

// Empty reports whether the view has no elements.
func (v View) Empty() bool { return v.n == 0 }

// Bytes returns the whole extent as a byte slice aliasing the caller's memory.
func (v View) Bytes() []byte {
	if v.n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(v.base), v.n*v.size)
}

// CheckRange verifies that [start, start+count) lies inside the view.
func (v View) CheckRange(start, count int) error {
	if start < 0 {
		return &numeric.RangeError{Index: start, Len: v.n}
	}
	if count < 0 || start+count > v.n {
		return &numeric.RangeError{Index: start + count - 1, Len: v.n}
	}
	return nil
}

// Overlaps reports whether the byte extents of v and o intersect.
func (v View) Overlaps(o View) bool {
	if v.n == 0 || o.n == 0 {
		return false
	}
	vStart, vEnd := uintptr(v.base), uintptr(v.base)+uintptr(v.ByteLen())
	oStart, oEnd := uintptr(o.base), uintptr(o.base)+uintptr(o.ByteLen())
	return vStart < oEnd && oStart < vEnd
}

// SameExtent reports whether v and o start at the same address and cover the
// same bytes with elements of the same width. Such views may be used as source
// and destination of one in-place operation.
func (v View) SameExtent(o View) bool {
	return v.base == o.base && v.n == o.n && v.size == o.size
}

// String is used in test failures and debug logs.
func (v View) String() string {
	return fmt.Sprintf("view{%s x %d @ %p}", v.kind, v.n, v.base)
}

// Slice reinterprets the view as []T under the package reinterpretation
// contract.
func Slice[T numeric.Number](v View) ([]T, error) {
	var zero T
	if int(unsafe.Sizeof(zero)) != v.size {
		return nil, fmt.Errorf("%w: %d-byte %s view as %s", numeric.ErrReinterpret, v.size, v.kind, numeric.KindOf[T]())
	}
	if uintptr(v.base)%unsafe.Alignof(zero) != 0 {
		return nil, fmt.Errorf("%w: %s view at %p is not aligned for %s", numeric.ErrReinterpret, v.kind, v.base, numeric.KindOf[T]())
	}
	if v.n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(v.base), v.n), nil
}

// MustSlice is Slice for callers whose plan already guarantees the contract.
// It panics when the contract is violated.
func MustSlice[T numeric.Number](v View) []T {
	s, err := Slice[T](v)
	if err != nil {
		panic(err)
	}
	return s
}

// Alloc returns a view over a new zeroed slice of n elements of kind k. It is
// used where the element type is only known at run time.
func Alloc(k numeric.Kind, n int) (View, error) {
	switch k {
	case numeric.Int8:
		return Of(make([]int8, n)), nil
	case numeric.Int16:
		return Of(make([]int16, n)), nil
	case numeric.Int32:
		return Of(make([]int32, n)), nil
	case numeric.Int64:
		return Of(make([]int64, n)), nil
	case numeric.Uint8:
		return Of(make([]uint8, n)), nil
	case numeric.Uint16:
		return Of(make([]uint16, n)), nil
	case numeric.Uint32:
		return Of(make([]uint32, n)), nil
	case numeric.Uint64:
		return Of(make([]uint64, n)), nil
	case numeric.Float32:
		return Of(make([]float32, n)), nil
	case numeric.Float64:
		return Of(make([]float64, n)), nil
	default:
		return View{}, &numeric.UnsupportedTypePairError{From: k.String(), To: k.String()}
	}
}

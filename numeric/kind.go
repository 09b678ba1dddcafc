package numeric

import "unsafe"

// Number is the set of fixed-width element types the engine converts between.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Number accepted by the bitwise operations.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Kind identifies a primitive numeric element type.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no conversion semantics are defined for it.
	KindInvalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Kinds lists every valid Kind in declaration order.
var Kinds = []Kind{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64}

// String returns the Go name of the element type.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Valid reports whether k names a supported element type.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Float64
}

// Size returns the element width in bytes, or 0 for KindInvalid.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= Int8 && k <= Uint64
}

// IsSigned reports whether k can represent negative values.
func (k Kind) IsSigned() bool {
	return (k >= Int8 && k <= Int64) || k.IsFloat()
}

// KindOf returns the Kind of T. Named types report the kind of their
// underlying type, so a type Sample int16 yields Int16.
func KindOf[T Number]() Kind {
	var zero T
	one := T(1)
	isFloat := one/T(2) != zero
	signed := zero-one < zero

	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return Int8
		}
		return Uint8
	case 2:
		if signed {
			return Int16
		}
		return Uint16
	case 4:
		switch {
		case isFloat:
			return Float32
		case signed:
			return Int32
		default:
			return Uint32
		}
	case 8:
		switch {
		case isFloat:
			return Float64
		case signed:
			return Int64
		default:
			return Uint64
		}
	}
	return KindInvalid
}

// Pair is an ordered (source, destination) combination of element kinds.
// Converting From->To is distinct from To->From.
type Pair struct {
	From Kind
	To   Kind
}

// PairOf returns the Pair for a conversion from F to T.
func PairOf[F, T Number]() Pair {
	return Pair{From: KindOf[F](), To: KindOf[T]()}
}

// Valid reports whether conversion semantics are defined for the pair.
func (p Pair) Valid() bool {
	return p.From.Valid() && p.To.Valid()
}

// String formats the pair as "from->to".
func (p Pair) String() string {
	return p.From.String() + "->" + p.To.String()
}

// MaxSize returns the larger of the two element widths. A vector register of
// width w holds w/MaxSize lanes of the pair.
func (p Pair) MaxSize() int {
	return max(p.From.Size(), p.To.Size())
}

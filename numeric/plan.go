package numeric

// BitwiseOp selects an elementwise bitwise operation.
type BitwiseOp uint8

const (
	OpAnd BitwiseOp = iota
	OpOr
	OpXor
	OpAndNot
	OpNot
)

func (op BitwiseOp) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpAndNot:
		return "andnot"
	case OpNot:
		return "not"
	default:
		return "unknown"
	}
}

// Unary reports whether the operation reads a single source.
func (op BitwiseOp) Unary() bool {
	return op == OpNot
}

// Plan describes how one call splits its buffer between a vector tier and
// the scalar kernel.
//
// Bulk is always a multiple of Lanes and Bulk+Remainder equals the element
// count. When no tier applies, Tier is empty, Bulk is 0 and Remainder is the
// whole count.
type Plan struct {
	Tier      string
	Kernel    string // registry entry that runs the bulk, e.g. "lanes"
	Width     int
	Lanes     int
	Bulk      int
	Remainder int
}

// Vectorized reports whether any part of the buffer runs on a vector kernel.
func (p Plan) Vectorized() bool {
	return p.Tier != "" && p.Bulk > 0
}

// ScalarPlan returns the plan that sends all n elements to the scalar kernel.
func ScalarPlan(n int) Plan {
	return Plan{Remainder: n}
}

//go:build arm64 && !purego

package neon

// And computes dst = a & b. len(dst) must be a multiple of 16 and a, b at
// least as long.
func And(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andNEON(dst, a, b)
}

// Or computes dst = a | b.
func Or(dst, a, b []byte) {
	checkOperands(dst, a, b)
	orNEON(dst, a, b)
}

// Xor computes dst = a ^ b.
func Xor(dst, a, b []byte) {
	checkOperands(dst, a, b)
	xorNEON(dst, a, b)
}

// AndNot computes dst = a &^ b.
func AndNot(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andNotNEON(dst, a, b)
}

// Not computes dst = ^a. The second operand is ignored.
func Not(dst, a, _ []byte) {
	checkOperands(dst, a, a)
	notNEON(dst, a)
}

func checkOperands(dst, a, b []byte) {
	if len(dst)%16 != 0 || len(a) < len(dst) || len(b) < len(dst) {
		panic("neon: bad operand length")
	}
}

// Assembly function declarations (implemented in bitwise.s)

//go:noescape
func andNEON(dst, a, b []byte)

//go:noescape
func orNEON(dst, a, b []byte)

//go:noescape
func xorNEON(dst, a, b []byte)

//go:noescape
func andNotNEON(dst, a, b []byte)

//go:noescape
func notNEON(dst, a []byte)

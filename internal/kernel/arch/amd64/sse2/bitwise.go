//go:build amd64 && !purego

package sse2

// And computes dst = a & b. len(dst) must be a multiple of 16 and a, b at
// least as long.
func And(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andSSE2(dst, a, b)
}

// Or computes dst = a | b.
func Or(dst, a, b []byte) {
	checkOperands(dst, a, b)
	orSSE2(dst, a, b)
}

// Xor computes dst = a ^ b.
func Xor(dst, a, b []byte) {
	checkOperands(dst, a, b)
	xorSSE2(dst, a, b)
}

// AndNot computes dst = a &^ b.
func AndNot(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andNotSSE2(dst, a, b)
}

// Not computes dst = ^a. The second operand is ignored.
func Not(dst, a, _ []byte) {
	checkOperands(dst, a, a)
	notSSE2(dst, a)
}

func checkOperands(dst, a, b []byte) {
	if len(dst)%16 != 0 || len(a) < len(dst) || len(b) < len(dst) {
		panic("sse2: bad operand length")
	}
}

// Assembly function declarations (implemented in bitwise.s)

//go:noescape
func andSSE2(dst, a, b []byte)

//go:noescape
func orSSE2(dst, a, b []byte)

//go:noescape
func xorSSE2(dst, a, b []byte)

//go:noescape
func andNotSSE2(dst, a, b []byte)

//go:noescape
func notSSE2(dst, a []byte)

//go:build amd64 && !purego

package avx2

// And computes dst = a & b. len(dst) must be a multiple of 32 and a, b at
// least as long.
func And(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andAVX2(dst, a, b)
}

// Or computes dst = a | b.
func Or(dst, a, b []byte) {
	checkOperands(dst, a, b)
	orAVX2(dst, a, b)
}

// Xor computes dst = a ^ b.
func Xor(dst, a, b []byte) {
	checkOperands(dst, a, b)
	xorAVX2(dst, a, b)
}

// AndNot computes dst = a &^ b.
func AndNot(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andNotAVX2(dst, a, b)
}

// Not computes dst = ^a. The second operand is ignored.
func Not(dst, a, _ []byte) {
	checkOperands(dst, a, a)
	notAVX2(dst, a)
}

func checkOperands(dst, a, b []byte) {
	if len(dst)%32 != 0 || len(a) < len(dst) || len(b) < len(dst) {
		panic("avx2: bad operand length")
	}
}

// Assembly function declarations (implemented in bitwise.s)

//go:noescape
func andAVX2(dst, a, b []byte)

//go:noescape
func orAVX2(dst, a, b []byte)

//go:noescape
func xorAVX2(dst, a, b []byte)

//go:noescape
func andNotAVX2(dst, a, b []byte)

//go:noescape
func notAVX2(dst, a []byte)

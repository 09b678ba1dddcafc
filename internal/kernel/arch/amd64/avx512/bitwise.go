//go:build amd64 && !purego

package avx512

// And computes dst = a & b. len(dst) must be a multiple of 64 and a, b at
// least as long.
func And(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andAVX512(dst, a, b)
}

// Or computes dst = a | b.
func Or(dst, a, b []byte) {
	checkOperands(dst, a, b)
	orAVX512(dst, a, b)
}

// Xor computes dst = a ^ b.
func Xor(dst, a, b []byte) {
	checkOperands(dst, a, b)
	xorAVX512(dst, a, b)
}

// AndNot computes dst = a &^ b.
func AndNot(dst, a, b []byte) {
	checkOperands(dst, a, b)
	andNotAVX512(dst, a, b)
}

// Not computes dst = ^a. The second operand is ignored.
func Not(dst, a, _ []byte) {
	checkOperands(dst, a, a)
	notAVX512(dst, a)
}

func checkOperands(dst, a, b []byte) {
	if len(dst)%64 != 0 || len(a) < len(dst) || len(b) < len(dst) {
		panic("avx512: bad operand length")
	}
}

// Assembly function declarations (implemented in bitwise.s)

//go:noescape
func andAVX512(dst, a, b []byte)

//go:noescape
func orAVX512(dst, a, b []byte)

//go:noescape
func xorAVX512(dst, a, b []byte)

//go:noescape
func andNotAVX512(dst, a, b []byte)

//go:noescape
func notAVX512(dst, a []byte)

package testutil

import (
	"testing"

	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/kernel/scalar"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// CheckConvertBulk runs fn over whole blocks of lanes elements and requires
// the scalar result. The element after the bulk must stay zero.
func CheckConvertBulk(tb testing.TB, pair numeric.Pair, fn registry.ConvertBulk, lanes int) {
	tb.Helper()
	ref, err := scalar.Convert(pair)
	if err != nil {
		tb.Fatal(err)
	}
	for _, blocks := range []int{1, 2, 7} {
		n := blocks * lanes
		src, _ := RandomView(pair.From, uint64(n), n+1)
		got, _ := view.Alloc(pair.To, n+1)
		want, _ := view.Alloc(pair.To, n+1)

		fn(src, got, n)
		if err := ref(src, want, 0, n); err != nil {
			tb.Fatal(err)
		}
		RequireSameBytes(tb, got, want)
	}
}

// CheckBitwiseBulk runs fn over whole blocks of width bytes at odd offsets and
// requires the scalar result. The byte after the bulk must stay zero.
func CheckBitwiseBulk(tb testing.TB, op numeric.BitwiseOp, fn registry.BitwiseBulk, width int) {
	tb.Helper()
	for _, blocks := range []int{1, 3, 8} {
		n := blocks * width
		a := RandomBytes(uint64(n), n+1)[1:]
		var b []byte
		if !op.Unary() {
			b = RandomBytes(uint64(n)+1, n+3)[3:]
		}
		got := make([]byte, n+2)[1:]
		want := make([]byte, n+1)

		fn(got[:n], a, b)
		scalar.BitwiseBytes(op, want[:n], a, b)
		RequireEqual(tb, got, want)
	}
}

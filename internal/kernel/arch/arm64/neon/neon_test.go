//go:build arm64 && !purego

package neon

import (
	"testing"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/testutil"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

const width = 16

func requireNEON(t *testing.T) {
	t.Helper()
	if !cpu.Supports(cpu.DetectFeatures(), cpu.SIMDNEON) {
		t.Skip("NEON disabled")
	}
}

func TestBitwise_NEON(t *testing.T) {
	requireNEON(t)

	for op, fn := range map[numeric.BitwiseOp]registry.BitwiseBulk{
		numeric.OpAnd:    And,
		numeric.OpOr:     Or,
		numeric.OpXor:    Xor,
		numeric.OpAndNot: AndNot,
		numeric.OpNot:    Not,
	} {
		t.Run(op.String(), func(t *testing.T) {
			testutil.CheckBitwiseBulk(t, op, fn, width)
		})
	}
}

func TestConvert_NEON(t *testing.T) {
	requireNEON(t)

	kernels := convertKernels()
	if want := 1 + 2*6*2; len(kernels) != want {
		t.Fatalf("registered %d pairs, want %d", len(kernels), want)
	}
	tier := registry.Tier{Name: "neon", Width: width}
	for pair, fn := range kernels {
		t.Run(pair.String(), func(t *testing.T) {
			testutil.CheckConvertBulk(t, pair, fn, tier.Lanes(pair))
		})
	}
}

func TestSignExtension_NEON(t *testing.T) {
	requireNEON(t)

	src := []int8{-128, -1, 0, 127, -2, 1, -64, 64}
	got := make([]uint64, len(src))
	fn := convertKernels()[numeric.PairOf[int8, uint64]()]
	fn(view.Of(src), view.Of(got), len(src))
	for i, v := range src {
		if got[i] != uint64(v) {
			t.Errorf("[%d] %d -> %#x, want %#x", i, v, got[i], uint64(v))
		}
	}
}

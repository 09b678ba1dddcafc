//go:build amd64 && !purego

package avx512

import (
	"testing"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/testutil"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

const width = 64

func requireAVX512(t *testing.T) {
	t.Helper()
	if !cpu.Supports(cpu.DetectFeatures(), cpu.SIMDAVX512) {
		t.Skip("CPU lacks AVX-512")
	}
}

func TestBitwise_AVX512(t *testing.T) {
	requireAVX512(t)

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

func TestConvert_AVX512(t *testing.T) {
	requireAVX512(t)

	kernels := convertKernels()
	// 6 widenings per source signedness, each to two destination kinds.
	if want := 1 + 2*6*2; len(kernels) != want {
		t.Fatalf("registered %d pairs, want %d", len(kernels), want)
	}
	tier := registry.Tier{Name: "avx512", Width: width}
	for pair, fn := range kernels {
		t.Run(pair.String(), func(t *testing.T) {
			testutil.CheckConvertBulk(t, pair, fn, tier.Lanes(pair))
		})
	}
}

func TestInt32ToFloat32Boundary_AVX512(t *testing.T) {
	requireAVX512(t)

	edges := testutil.Boundary[int32]()
	src := make([]int32, 64)
	for i := range src {
		src[i] = edges[i%len(edges)] - int32(i)
	}
	got := make([]float32, len(src))
	want := make([]float32, len(src))

	convert := convertKernels()[numeric.PairOf[int32, float32]()]
	convert(view.Of(src), view.Of(got), len(src))
	for i, v := range src {
		want[i] = float32(v)
	}
	testutil.RequireEqual(t, got, want)
}

func TestBadOperandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("And accepted a length that is not a multiple of 64")
		}
	}()
	And(make([]byte, 63), make([]byte, 63), make([]byte, 63))
}

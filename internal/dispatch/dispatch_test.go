package dispatch

import (
	"errors"
	"strconv"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/lanes"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/kernel/scalar"
	"github.com/cwbudde/algo-numconv/internal/testutil"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

const maxLen = 200

func TestConvertEveryPairEveryTier(t *testing.T) {
	tiers := testutil.ForceAllTiers(t)

	for _, from := range numeric.Kinds {
		for _, to := range numeric.Kinds {
			pair := numeric.Pair{From: from, To: to}
			ref, err := scalar.Convert(pair)
			if err != nil {
				t.Fatal(err)
			}
			for _, tier := range tiers {
				cfg := numeric.Config{MaxWidth: tier.Width}
				t.Run(tier.Name+"/"+pair.String(), func(t *testing.T) {
					for n := 0; n <= maxLen; n++ {
						src, _ := testutil.RandomView(from, uint64(n), n)
						got, _ := view.Alloc(to, n)
						want, _ := view.Alloc(to, n)

						if err := Convert(src, got, cfg); err != nil {
							t.Fatalf("n=%d: %v", n, err)
						}
						if err := ref(src, want, 0, n); err != nil {
							t.Fatal(err)
						}
						testutil.RequireSameBytes(t, got, want)
					}
				})
			}
		}
	}
}

func TestConvertBoundaryValues(t *testing.T) {
	tiers := testutil.ForceAllTiers(t)
	edges := testutil.Boundary[int32]()
	src := make([]int32, 96)
	for i := range src {
		src[i] = edges[i%len(edges)]
	}

	for _, tier := range tiers {
		t.Run(tier.Name, func(t *testing.T) {
			got := make([]float32, len(src))
			want := make([]float32, len(src))
			if err := Convert(view.Of(src), view.Of(got), numeric.Config{MaxWidth: tier.Width}); err != nil {
				t.Fatal(err)
			}
			scalar.ConvertSlice(want, src)
			testutil.RequireEqual(t, got, want)

			wide := make([]float64, len(src))
			if err := Convert(view.Of(src), view.Of(wide), numeric.Config{MaxWidth: tier.Width}); err != nil {
				t.Fatal(err)
			}
			for i, v := range src {
				if wide[i] != float64(v) {
					t.Fatalf("int32->float64 [%d] = %v, want %v", i, wide[i], float64(v))
				}
			}
		})
	}
}

func TestPlanConvert(t *testing.T) {
	tiers := testutil.ForceAllTiers(t)
	if len(tiers) == 0 {
		t.Skip("no vector tiers on this architecture")
	}
	widest := tiers[0]
	pair := numeric.PairOf[uint8, int16]()
	lanes := widest.Lanes(pair)

	tests := []struct {
		name     string
		n        int
		cfg      numeric.Config
		wantTier string
		wantBulk int
	}{
		{"exact", lanes, numeric.Config{}, widest.Name, lanes},
		{"one more", lanes + 1, numeric.Config{}, widest.Name, lanes},
		{"several blocks", 3*lanes + 2, numeric.Config{}, widest.Name, 3 * lanes},
		{"scalar only", 3 * lanes, numeric.Config{ScalarOnly: true}, "", 0},
		{"empty", 0, numeric.Config{}, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanConvert(pair, tt.n, tt.cfg)
			if plan.Tier != tt.wantTier || plan.Bulk != tt.wantBulk {
				t.Fatalf("plan = %+v, want tier %q bulk %d", plan, tt.wantTier, tt.wantBulk)
			}
			if plan.Bulk+plan.Remainder != tt.n {
				t.Fatalf("bulk %d + remainder %d != %d", plan.Bulk, plan.Remainder, tt.n)
			}
			if plan.Vectorized() && plan.Remainder >= plan.Lanes {
				t.Fatalf("remainder %d not below lanes %d", plan.Remainder, plan.Lanes)
			}
		})
	}
}

func TestPlanFallsBackToNarrowerTier(t *testing.T) {
	tiers := testutil.ForceAllTiers(t)
	if len(tiers) < 2 {
		t.Skip("needs at least two tiers")
	}
	pair := numeric.PairOf[uint8, uint64]()
	wide, narrow := tiers[0], tiers[len(tiers)-1]

	// Too short for one block of the widest tier, long enough for the narrowest.
	n := narrow.Lanes(pair)
	if n >= wide.Lanes(pair) {
		t.Fatalf("tier table not decreasing: %+v", tiers)
	}
	plan := PlanConvert(pair, n, numeric.Config{})
	if plan.Tier == wide.Name || !plan.Vectorized() {
		t.Fatalf("plan = %+v, want a narrower vector tier", plan)
	}

	plan = PlanConvert(pair, n-1, numeric.Config{})
	if plan.Vectorized() {
		t.Fatalf("plan = %+v, want scalar below the narrowest lane count", plan)
	}
}

// nativeEntry returns the name of the highest-priority non-portable entry of
// tier that the CPU can run and that has a kernel for the pair or op.
func nativeEntry(tier string, pair *numeric.Pair, op *numeric.BitwiseOp) string {
	features := cpu.DetectFeatures()
	for _, e := range registry.Global.ListEntries() {
		if e.Tier != tier || e.Name == lanes.Name || !cpu.Supports(features, e.Level) {
			continue
		}
		if pair != nil && e.Convert[*pair] != nil {
			return e.Name
		}
		if op != nil && e.Bitwise[*op] != nil {
			return e.Name
		}
	}
	return ""
}

func TestPlanPicksNativeKernelOnWidestTier(t *testing.T) {
	cpu.ResetDetection()
	t.Cleanup(cpu.ResetDetection)
	supported := registry.Supported(cpu.DetectFeatures())
	if len(supported) == 0 {
		t.Skip("no vector tier on this host")
	}
	widest := supported[0]

	pairs := []numeric.Pair{
		numeric.PairOf[int32, float32](),
		numeric.PairOf[uint8, int64](),
		numeric.PairOf[int16, uint32](),
	}
	ops := []numeric.BitwiseOp{numeric.OpAnd, numeric.OpAndNot, numeric.OpNot}
	checked := 0

	for _, n := range []int{64, 256, 4096} {
		for _, pair := range pairs {
			want := nativeEntry(widest.Name, &pair, nil)
			if want == "" {
				continue
			}
			checked++
			plan := PlanConvert(pair, n, numeric.Config{})
			if plan.Tier != widest.Name || plan.Kernel != want {
				t.Errorf("n=%d %s: plan = %+v, want %s on %s", n, pair, plan, want, widest.Name)
			}
		}
		for _, op := range ops {
			want := nativeEntry(widest.Name, nil, &op)
			if want == "" {
				continue
			}
			checked++
			plan := PlanBitwise(op, numeric.Uint32, n, numeric.Config{})
			if plan.Tier != widest.Name || plan.Kernel != want {
				t.Errorf("n=%d %s: plan = %+v, want %s on %s", n, op, plan, want, widest.Name)
			}
		}
	}
	if checked == 0 {
		t.Skipf("no native kernels for %s in this build", widest.Name)
	}
}

func TestPlanScalarWhenForcedGeneric(t *testing.T) {
	testutil.ForceScalar(t)
	plan := PlanConvert(numeric.PairOf[int32, float32](), 1000, numeric.Config{})
	if plan.Vectorized() || plan.Remainder != 1000 {
		t.Fatalf("plan = %+v, want all scalar", plan)
	}
}

func TestPlanNoKernelForPair(t *testing.T) {
	testutil.ForceAllTiers(t)
	plan := PlanConvert(numeric.PairOf[float64, int8](), 1000, numeric.Config{})
	if plan.Vectorized() {
		t.Fatalf("float64->int8 has no vector kernel, plan = %+v", plan)
	}
}

func TestConvertErrors(t *testing.T) {
	buf := make([]int32, 16)

	tests := []struct {
		name    string
		src     view.View
		dst     view.View
		wantErr error
	}{
		{"length mismatch", view.Of(make([]int8, 3)), view.Of(make([]int8, 4)), numeric.ErrLengthMismatch},
		{"invalid kind", view.View{}, view.View{}, numeric.ErrUnsupportedTypePair},
		{"partial overlap", view.Of(buf[0:8]), view.Of(buf[4:12]), numeric.ErrOverlap},
		{"same memory different width", view.Of(buf[0:8]), view.Of(unsafe.Slice((*int16)(unsafe.Pointer(&buf[0])), 8)), numeric.ErrOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Convert(tt.src, tt.dst, numeric.Config{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvertLengthMismatchWritesNothing(t *testing.T) {
	src := []uint8{1, 2, 3}
	dst := []uint16{7, 7}
	err := Convert(view.Of(src), view.Of(dst), numeric.Config{})
	var lm *numeric.LengthMismatchError
	if !errors.As(err, &lm) || lm.Want != 3 || lm.Got != 2 {
		t.Fatalf("err = %v, want LengthMismatchError{3, 2}", err)
	}
	testutil.RequireEqual(t, dst, []uint16{7, 7})
}

func TestConvertInPlace(t *testing.T) {
	testutil.ForceAllTiers(t)
	buf := make([]int32, 67)
	for i := range buf {
		buf[i] = int32(i*7919) - 200000
	}
	want := make([]float32, len(buf))
	scalar.ConvertSlice(want, buf)

	f := view.MustSlice[float32](view.Of(buf))
	if err := Convert(view.Of(buf), view.Of(f), numeric.Config{}); err != nil {
		t.Fatalf("in-place int32->float32: %v", err)
	}
	testutil.RequireEqual(t, f, want)
}

func TestBitwiseMatchesScalar(t *testing.T) {
	tiers := testutil.ForceAllTiers(t)
	ops := []numeric.BitwiseOp{numeric.OpAnd, numeric.OpOr, numeric.OpXor, numeric.OpAndNot, numeric.OpNot}

	for _, tier := range tiers {
		cfg := numeric.Config{MaxWidth: tier.Width}
		for _, op := range ops {
			t.Run(tier.Name+"/"+op.String(), func(t *testing.T) {
				for n := 0; n <= maxLen; n++ {
					a := testutil.Random[uint16](1, n)
					b := testutil.Random[uint16](2, n)
					got := make([]uint16, n)
					want := make([]uint16, n)

					var bv view.View
					if !op.Unary() {
						bv = view.Of(b)
					}
					if err := Bitwise(op, view.Of(a), bv, view.Of(got), cfg); err != nil {
						t.Fatalf("n=%d: %v", n, err)
					}
					scalar.BitwiseBytes(op, view.Of(want).Bytes(), view.Of(a).Bytes(), view.Of(b).Bytes())
					testutil.RequireEqual(t, got, want)
				}
			})
		}
	}
}

func TestBitwiseErrors(t *testing.T) {
	a := make([]uint32, 4)
	tests := []struct {
		name    string
		op      numeric.BitwiseOp
		a, b    view.View
		dst     view.View
		wantErr error
	}{
		{"dst short", numeric.OpAnd, view.Of(a), view.Of(a), view.Of(make([]uint32, 3)), numeric.ErrLengthMismatch},
		{"b short", numeric.OpXor, view.Of(a), view.Of(make([]uint32, 2)), view.Of(make([]uint32, 4)), numeric.ErrLengthMismatch},
		{"not short", numeric.OpNot, view.Of(a), view.View{}, view.Of(make([]uint32, 5)), numeric.ErrLengthMismatch},
		{"float kind", numeric.OpOr, view.Of(make([]float32, 4)), view.Of(make([]float32, 4)), view.Of(make([]float32, 4)), numeric.ErrUnsupportedTypePair},
		{"mixed kinds", numeric.OpOr, view.Of(a), view.Of(make([]int32, 4)), view.Of(make([]uint32, 4)), numeric.ErrUnsupportedTypePair},
		{"overlap", numeric.OpAnd, view.Of(a[0:2]), view.Of(a[2:4]), view.Of(a[1:3]), numeric.ErrOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Bitwise(tt.op, tt.a, tt.b, tt.dst, numeric.Config{}); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBitwiseInPlace(t *testing.T) {
	testutil.ForceAllTiers(t)
	a := testutil.Random[uint64](9, 67)
	b := testutil.Random[uint64](10, 67)
	want := make([]uint64, len(a))
	for i := range a {
		want[i] = a[i] ^ b[i]
	}
	if err := Bitwise(numeric.OpXor, view.Of(a), view.Of(b), view.Of(a), numeric.Config{}); err != nil {
		t.Fatal(err)
	}
	testutil.RequireEqual(t, a, want)
}

func TestKernelsRegistered(t *testing.T) {
	for _, tier := range registry.Tiers() {
		found := false
		for _, e := range registry.Global.ListEntries() {
			if e.Tier == tier.Name && e.Name == lanes.Name && e.Convert[numeric.PairOf[uint8, uint8]()] != nil {
				found = true
			}
		}
		if !found {
			t.Errorf("tier %s: no portable identity kernel", tier.Name)
		}
	}
}

func BenchmarkConvertUint8ToFloat32(b *testing.B) {
	for _, n := range []int{64, 4096} {
		src := testutil.RandomBytes(1, n)
		dst := make([]float32, n)
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 5))

			for range b.N {
				_ = Convert(view.Of(src), view.Of(dst), numeric.Config{})
			}
		})
	}
}

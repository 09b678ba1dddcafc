package main

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/dispatch"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/kernel/scalar"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

type tierResult struct {
	Tier       string
	Runs       int
	Vectorized int
	Mismatches int
	Residual   float64 // largest |vector - scalar| over float64 outputs
	first      string
}

var bitwiseOps = []numeric.BitwiseOp{numeric.OpAnd, numeric.OpOr, numeric.OpXor, numeric.OpAndNot, numeric.OpNot}

// selfCheck runs every type pair and bitwise operation for lengths 0..maxLen
// on each supported tier and compares the output with the scalar kernel.
// Tiers are checked concurrently.
func selfCheck(maxLen int) ([]tierResult, error) {
	tiers := registry.Supported(cpu.DetectFeatures())
	results := make([]tierResult, len(tiers))

	var g errgroup.Group
	for i, tier := range tiers {
		g.Go(func() error {
			r, err := checkTier(tier, maxLen)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	for _, r := range results {
		if r.Mismatches > 0 {
			return results, fmt.Errorf("tier %s: %d mismatches, first: %s", r.Tier, r.Mismatches, r.first)
		}
	}
	return results, nil
}

func checkTier(tier registry.Tier, maxLen int) (tierResult, error) {
	res := tierResult{Tier: tier.Name}
	cfg := numeric.Config{MaxWidth: tier.Width}
	rng := rand.New(rand.NewPCG(uint64(tier.Width), 0x6e756d696e666f))

	for _, from := range numeric.Kinds {
		for _, to := range numeric.Kinds {
			pair := numeric.Pair{From: from, To: to}
			ref, err := scalar.Convert(pair)
			if err != nil {
				return res, err
			}
			for n := 0; n <= maxLen; n++ {
				src, err := randomView(from, rng, n)
				if err != nil {
					return res, err
				}
				got, _ := view.Alloc(to, n)
				want, _ := view.Alloc(to, n)
				if err := dispatch.Convert(src, got, cfg); err != nil {
					return res, fmt.Errorf("%s n=%d: %w", pair, n, err)
				}
				if err := ref(src, want, 0, n); err != nil {
					return res, fmt.Errorf("%s n=%d: %w", pair, n, err)
				}
				res.record(dispatch.PlanConvert(pair, n, cfg), got, want, pair.String(), n)
				if to == numeric.Float64 && n > 0 {
					res.Residual = max(res.Residual, residual(view.MustSlice[float64](got), view.MustSlice[float64](want)))
				}
			}
		}
	}

	for _, op := range bitwiseOps {
		for n := 0; n <= maxLen; n++ {
			a, _ := randomView(numeric.Uint32, rng, n)
			b, _ := randomView(numeric.Uint32, rng, n)
			got, _ := view.Alloc(numeric.Uint32, n)
			want, _ := view.Alloc(numeric.Uint32, n)
			if err := dispatch.Bitwise(op, a, b, got, cfg); err != nil {
				return res, fmt.Errorf("%s n=%d: %w", op, n, err)
			}
			scalar.BitwiseBytes(op, want.Bytes(), a.Bytes(), b.Bytes())
			res.record(dispatch.PlanBitwise(op, numeric.Uint32, n, cfg), got, want, op.String(), n)
		}
	}
	return res, nil
}

func (r *tierResult) record(plan numeric.Plan, got, want view.View, name string, n int) {
	r.Runs++
	if plan.Vectorized() {
		r.Vectorized++
	}
	if bytes.Equal(got.Bytes(), want.Bytes()) {
		return
	}
	r.Mismatches++
	if r.first == "" {
		r.first = fmt.Sprintf("%s n=%d (plan %s/%s bulk %d)", name, n, plan.Tier, plan.Kernel, plan.Bulk)
	}
}

// residual returns max |got[i] - want[i]|.
func residual(got, want []float64) float64 {
	diff := make([]float64, len(got))
	vecmath.ScaleBlock(diff, want, -1)
	vecmath.AddBlockInPlace(diff, got)
	return vecmath.MaxAbs(diff)
}

// randomView fills integer kinds with random bits and float kinds with finite
// values spanning every integer range, so float64 residuals stay meaningful.
func randomView(k numeric.Kind, rng *rand.Rand, n int) (view.View, error) {
	v, err := view.Alloc(k, n)
	if err != nil {
		return v, err
	}
	switch k {
	case numeric.Float32:
		for i, s := 0, view.MustSlice[float32](v); i < n; i++ {
			s[i] = float32(finite(rng))
		}
	case numeric.Float64:
		for i, s := 0, view.MustSlice[float64](v); i < n; i++ {
			s[i] = finite(rng)
		}
	default:
		b := v.Bytes()
		for i := range b {
			b[i] = byte(rng.Uint32())
		}
	}
	return v, nil
}

func finite(rng *rand.Rand) float64 {
	return math.Ldexp(rng.Float64()*2-1, rng.IntN(66))
}

// Package dispatch validates an operation, chooses the widest usable tier and
// splits the buffer between that tier's bulk kernel and the scalar kernel.
//
// Tier choice walks registry.Tiers() widest first and takes the first tier
// that the CPU supports, that the config allows, whose lane count for the
// pair fits in the buffer and for which some registry entry has a kernel.
// The bulk kernel runs over the largest lane-multiple prefix; the scalar
// kernel finishes the tail. All validation happens before the first write.
package dispatch

import (
	"sync"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/kernel/scalar"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// Convert converts every element of src into dst.
func Convert(src, dst view.View, cfg numeric.Config) error {
	if src.Len() != dst.Len() {
		return &numeric.LengthMismatchError{Op: "convert", Want: src.Len(), Got: dst.Len()}
	}
	pair := numeric.Pair{From: src.Kind(), To: dst.Kind()}
	ref, err := scalar.Convert(pair)
	if err != nil {
		return err
	}
	if err := checkAlias(src, dst); err != nil {
		return err
	}
	if src.Empty() {
		return nil
	}

	plan, bulk := planConvert(pair, src.Len(), cfg)
	if plan.Bulk > 0 {
		bulk(src, dst, plan.Bulk)
	}
	return ref(src, dst, plan.Bulk, plan.Remainder)
}

// Bitwise applies op elementwise. b is ignored for unary operations and may be
// the zero View. All participating views must share element width and count.
func Bitwise(op numeric.BitwiseOp, a, b, dst view.View, cfg numeric.Config) error {
	n := dst.Len()
	if a.Len() != n {
		return &numeric.LengthMismatchError{Op: op.String(), Want: a.Len(), Got: n}
	}
	if !op.Unary() && b.Len() != n {
		return &numeric.LengthMismatchError{Op: op.String(), Want: a.Len(), Got: b.Len()}
	}
	if err := checkBitwiseKinds(op, a, b, dst); err != nil {
		return err
	}
	ref, err := scalar.Bitwise(op)
	if err != nil {
		return err
	}
	if err := checkAlias(a, dst); err != nil {
		return err
	}
	if !op.Unary() {
		if err := checkAlias(b, dst); err != nil {
			return err
		}
	}
	if n == 0 {
		return nil
	}

	plan, bulk := planBitwise(op, dst.Kind(), n, cfg)
	if plan.Bulk > 0 {
		nb := plan.Bulk * dst.Size()
		var y []byte
		if !op.Unary() {
			y = b.Bytes()[:nb]
		}
		bulk(dst.Bytes()[:nb], a.Bytes()[:nb], y)
	}
	return ref(a, b, dst, plan.Bulk, plan.Remainder)
}

// PlanConvert returns the split Convert would use for n elements of pair.
func PlanConvert(pair numeric.Pair, n int, cfg numeric.Config) numeric.Plan {
	plan, _ := planConvert(pair, n, cfg)
	return plan
}

// PlanBitwise returns the split Bitwise would use for n elements of kind k.
func PlanBitwise(op numeric.BitwiseOp, k numeric.Kind, n int, cfg numeric.Config) numeric.Plan {
	plan, _ := planBitwise(op, k, n, cfg)
	return plan
}

func planConvert(pair numeric.Pair, n int, cfg numeric.Config) (numeric.Plan, registry.ConvertBulk) {
	if n <= 0 || !pair.Valid() {
		return numeric.ScalarPlan(max(n, 0)), nil
	}
	features := cpu.DetectFeatures()
	logTiers(features)

	for _, tier := range registry.Tiers() {
		lanes, ok := usable(tier, pair, n, cfg, features)
		if !ok {
			continue
		}
		fn, kernel := registry.Global.LookupConvert(tier.Name, pair, features)
		if fn == nil {
			continue
		}
		return split(tier, kernel, lanes, n), fn
	}
	return numeric.ScalarPlan(n), nil
}

func planBitwise(op numeric.BitwiseOp, k numeric.Kind, n int, cfg numeric.Config) (numeric.Plan, registry.BitwiseBulk) {
	if n <= 0 || !k.IsInteger() {
		return numeric.ScalarPlan(max(n, 0)), nil
	}
	features := cpu.DetectFeatures()
	logTiers(features)

	pair := numeric.Pair{From: k, To: k}
	for _, tier := range registry.Tiers() {
		lanes, ok := usable(tier, pair, n, cfg, features)
		if !ok {
			continue
		}
		fn, kernel := registry.Global.LookupBitwise(tier.Name, op, features)
		if fn == nil {
			continue
		}
		return split(tier, kernel, lanes, n), fn
	}
	return numeric.ScalarPlan(n), nil
}

// usable reports whether tier may run at least one full block of pair.
func usable(tier registry.Tier, pair numeric.Pair, n int, cfg numeric.Config, features cpu.Features) (int, bool) {
	if !cfg.Allows(tier.Width) || !cpu.Supports(features, tier.Level) {
		return 0, false
	}
	lanes := tier.Lanes(pair)
	if lanes == 0 || lanes > n {
		return 0, false
	}
	return lanes, true
}

func split(tier registry.Tier, kernel string, lanes, n int) numeric.Plan {
	bulk := n - n%lanes
	return numeric.Plan{
		Tier:      tier.Name,
		Kernel:    kernel,
		Width:     tier.Width,
		Lanes:     lanes,
		Bulk:      bulk,
		Remainder: n - bulk,
	}
}

// checkAlias rejects source and destination views that share memory unless
// they are exactly the same extent of equal-width elements.
func checkAlias(src, dst view.View) error {
	if src.Overlaps(dst) && !src.SameExtent(dst) {
		return numeric.ErrOverlap
	}
	return nil
}

func checkBitwiseKinds(op numeric.BitwiseOp, a, b, dst view.View) error {
	k := dst.Kind()
	bad := !k.IsInteger() || a.Kind() != k
	if !op.Unary() && b.Kind() != k {
		bad = true
	}
	if bad {
		return &numeric.UnsupportedTypePairError{From: a.Kind().String(), To: k.String()}
	}
	return nil
}

var logTiersOnce sync.Once

// logTiers reports the tier table once per process. Features forced later in
// tests are not logged again.
func logTiers(features cpu.Features) {
	logTiersOnce.Do(func() {
		log := numeric.Logger()
		supported := registry.Supported(features)
		if len(supported) == 0 {
			log.Info("numeric: no vector tier usable, running scalar",
				"arch", features.Architecture,
				"forceGeneric", features.ForceGeneric,
			)
			return
		}
		names := make([]string, len(supported))
		for i, t := range supported {
			names[i] = t.Name
		}
		log.Debug("numeric: vector tiers",
			"arch", features.Architecture,
			"supported", names,
			"entries", len(registry.Global.ListEntries()),
		)
	})
}

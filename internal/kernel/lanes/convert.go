package lanes

import (
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

type convertTable map[numeric.Pair]registry.ConvertBulk

func convertKernels(tier registry.Tier) convertTable {
	t := make(convertTable)

	for _, from := range numeric.Kinds {
		for _, to := range numeric.Kinds {
			p := numeric.Pair{From: from, To: to}
			if isReinterpret(p) {
				t[p] = copyBulk
			}
		}
	}

	widenFrom[int8](t, tier)
	widenFrom[int16](t, tier)
	widenFrom[int32](t, tier)
	widenFrom[uint8](t, tier)
	widenFrom[uint16](t, tier)
	widenFrom[uint32](t, tier)

	add[int8, float32](t, tier)
	add[uint8, float32](t, tier)
	add[int16, float32](t, tier)
	add[uint16, float32](t, tier)
	add[int32, float32](t, tier)
	add[int32, float64](t, tier)
	add[float32, float64](t, tier)

	return t
}

// copyBulk moves the byte extent unchanged. Source and destination are either
// disjoint or the same extent, so copy's memmove is correct for both.
func copyBulk(src, dst view.View, n int) {
	size := src.Size()
	copy(dst.Bytes()[:n*size], src.Bytes()[:n*size])
}

func widenFrom[F numeric.Integer](t convertTable, tier registry.Tier) {
	addWider[F, int16](t, tier)
	addWider[F, int32](t, tier)
	addWider[F, int64](t, tier)
	addWider[F, uint16](t, tier)
	addWider[F, uint32](t, tier)
	addWider[F, uint64](t, tier)
}

func addWider[F, T numeric.Integer](t convertTable, tier registry.Tier) {
	if numeric.KindOf[T]().Size() > numeric.KindOf[F]().Size() {
		add[F, T](t, tier)
	}
}

func add[F, T numeric.Number](t convertTable, tier registry.Tier) {
	pair := numeric.PairOf[F, T]()
	t[pair] = blockConvert[F, T](tier.Lanes(pair))
}

// blockConvert returns a kernel that converts lanes elements per block.
// Only pairs whose Go conversion already has the scalar semantics (integer
// widening, integer to float, float32 to float64) are built this way.
func blockConvert[F, T numeric.Number](lanes int) registry.ConvertBulk {
	return func(src, dst view.View, n int) {
		s := view.MustSlice[F](src)[:n]
		d := view.MustSlice[T](dst)[:n]
		for i := 0; i < n; i += lanes {
			in := s[i : i+lanes : i+lanes]
			out := d[i : i+lanes : i+lanes]
			for j, v := range in {
				out[j] = T(v)
			}
		}
	}
}

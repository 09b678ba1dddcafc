//go:build amd64 && !purego

package dispatch

// AMD64 hardware kernels. The assembly packages register one entry per tier;
// archsimd registers nothing unless built with GOEXPERIMENT=simd.

import (
	_ "github.com/cwbudde/algo-numconv/internal/kernel/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-numconv/internal/kernel/arch/amd64/avx512"
	_ "github.com/cwbudde/algo-numconv/internal/kernel/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-numconv/internal/kernel/archsimd"
)

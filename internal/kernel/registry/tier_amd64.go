//go:build amd64

package registry

import "github.com/cwbudde/algo-numconv/internal/cpu"

var archTiers = []Tier{
	{Name: "avx512", Width: 64, Level: cpu.SIMDAVX512},
	{Name: "avx2", Width: 32, Level: cpu.SIMDAVX2},
	{Name: "sse2", Width: 16, Level: cpu.SIMDSSE2},
}

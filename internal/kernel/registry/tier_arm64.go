//go:build arm64

package registry

import "github.com/cwbudde/algo-numconv/internal/cpu"

var archTiers = []Tier{
	{Name: "neon", Width: 16, Level: cpu.SIMDNEON},
}

//go:build arm64 && !purego

package dispatch

// ARM64 hardware kernels.

import (
	_ "github.com/cwbudde/algo-numconv/internal/kernel/arch/arm64/neon"
)

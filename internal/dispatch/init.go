package dispatch

// This file imports the portable kernel package to trigger its init(),
// which registers one entry per tier with the global registry.

import (
	_ "github.com/cwbudde/algo-numconv/internal/kernel/lanes"
)

//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads the arm64 feature registers through x/sys/cpu.
// Advanced SIMD belongs to the ARMv8-A baseline, but the flag is read rather
// than assumed so that an emulator or hypervisor hiding it is respected.
func detectFeaturesImpl() Features {
	f := Features{Architecture: runtime.GOARCH}
	f.HasNEON = cpu.ARM64.HasASIMD
	return f
}

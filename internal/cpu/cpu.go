// Package cpu provides CPU feature detection for vector tier selection.
//
// This package detects the SIMD instruction set extensions (SSE2, AVX, AVX2,
// AVX-512, NEON) available on the current processor and caches the result
// for the lifetime of the process.
//
// Detection is performed lazily on the first call to DetectFeatures. The
// result is published atomically, so concurrent first callers all observe the
// same fully initialized Features value.
package cpu

import (
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-numconv/numeric"
)

// NoSIMDEnv is the environment variable that disables every vector tier.
const NoSIMDEnv = "NUMCONV_NO_SIMD"

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values generally indicate more advanced SIMD capabilities,
// but levels are not strictly comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (VEX-encoded 128-bit operations).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512 with the F, BW and VL subsets.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasAVX512 bool // AVX-512 F+BW+VL

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD kernels (testing, NUMCONV_NO_SIMD)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detected holds the features of this machine once detection has run.
	detected atomic.Pointer[Features]

	// detectMu serializes the detection routine itself.
	detectMu sync.Mutex

	// forced overrides hardware detection for testing.
	forced atomic.Pointer[Features]
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection runs once on the first call and is cached for subsequent calls.
// It never fails: on hosts where detection is unsupported every SIMD flag is
// false and callers degrade to scalar kernels.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}
	if f := detected.Load(); f != nil {
		return *f
	}

	detectMu.Lock()
	defer detectMu.Unlock()

	if f := detected.Load(); f != nil {
		return *f
	}
	f := detectFeaturesImpl()
	if noSIMDFromEnv() {
		f.ForceGeneric = true
	}
	detected.Store(&f)

	numeric.Logger().Debug("numeric: cpu features detected",
		"arch", f.Architecture,
		"sse2", f.HasSSE2,
		"avx", f.HasAVX,
		"avx2", f.HasAVX2,
		"avx512", f.HasAVX512,
		"neon", f.HasNEON,
		"forceGeneric", f.ForceGeneric,
	)
	return f
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return Supports(DetectFeatures(), SIMDAVX2)
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return Supports(DetectFeatures(), SIMDNEON)
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedCopy := f
	forced.Store(&forcedCopy)
	numeric.Logger().Debug("numeric: cpu features forced", "features", f)
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forced.Store(nil)

	detectMu.Lock()
	detected.Store(nil)
	detectMu.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// Each level is checked against its own flag; a wider level never implies a
// narrower one here.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// noSIMDFromEnv reports whether NUMCONV_NO_SIMD asks for scalar-only mode.
// Any non-empty value counts, except one that parses as false.
func noSIMDFromEnv() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

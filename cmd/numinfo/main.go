// Command numinfo prints the vector tiers numeric conversion can use on this
// machine and optionally checks every tier against the scalar kernel.
//
// Usage:
//
//	numinfo [flags]
//
// Examples:
//
//	numinfo
//	numinfo -v
//	numinfo -check -max 64
//	NUMCONV_NO_SIMD=1 numinfo
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"
	xcpu "golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-numconv/internal/cpu"
	"github.com/cwbudde/algo-numconv/internal/kernel/registry"
	"github.com/cwbudde/algo-numconv/numeric"
	"github.com/cwbudde/algo-numconv/numeric/capability"
)

func main() {
	verbose := flag.Bool("v", false, "log detection and dispatch decisions to stderr")
	check := flag.Bool("check", false, "compare every vector tier against the scalar kernel")
	maxLen := flag.Int("max", 200, "largest buffer length used by -check")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: numinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features, vector tiers and registered kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  numinfo -v\n")
		fmt.Fprintf(os.Stderr, "  numinfo -check -max 64\n")
	}
	flag.Parse()

	if *verbose {
		numeric.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	printHost(os.Stdout)
	fmt.Println()
	printTiers(os.Stdout, cpu.DetectFeatures())
	fmt.Println()
	printEntries(os.Stdout)

	if !*check {
		return
	}
	if *maxLen < 0 {
		fmt.Fprintf(os.Stderr, "error: -max must not be negative\n")
		os.Exit(2)
	}

	fmt.Println()
	results, err := selfCheck(*maxLen)
	printResults(os.Stdout, results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printHost(w io.Writer) {
	fmt.Fprintf(w, "Platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = "unknown"
	}
	fmt.Fprintf(w, "CPU:       %s (%s)\n", brand, cpuid.CPU.VendorString)
	fmt.Fprintf(w, "Features:  %s\n", strings.Join(hostFlags(), " "))
	fmt.Fprintf(w, "Tiers:     %s\n", capability.Describe())

	if mismatch := crossCheck(); mismatch != "" {
		fmt.Fprintf(w, "Warning:   %s\n", mismatch)
	}
}

// hostFlags lists the instruction sets x/sys/cpu reports for this machine.
func hostFlags() []string {
	var flags []string
	add := func(name string, ok bool) {
		if ok {
			flags = append(flags, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse2", xcpu.X86.HasSSE2)
		add("sse41", xcpu.X86.HasSSE41)
		add("avx", xcpu.X86.HasAVX)
		add("avx2", xcpu.X86.HasAVX2)
		add("avx512f", xcpu.X86.HasAVX512F)
		add("avx512bw", xcpu.X86.HasAVX512BW)
		add("avx512vl", xcpu.X86.HasAVX512VL)
	case "arm64":
		add("asimd", xcpu.ARM64.HasASIMD)
		add("sve", xcpu.ARM64.HasSVE)
	}
	if len(flags) == 0 {
		flags = append(flags, "none")
	}
	return flags
}

// crossCheck compares the probe's answer with cpuid's independent CPUID
// decoding and describes any disagreement.
func crossCheck() string {
	f := cpu.DetectFeatures()
	if f.ForceGeneric {
		return ""
	}
	var diffs []string
	switch runtime.GOARCH {
	case "amd64":
		if f.HasAVX2 != cpuid.CPU.Supports(cpuid.AVX2) {
			diffs = append(diffs, "avx2")
		}
		avx512 := cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL)
		if f.HasAVX512 != avx512 {
			diffs = append(diffs, "avx512")
		}
	case "arm64":
		if f.HasNEON != cpuid.CPU.Supports(cpuid.ASIMD) {
			diffs = append(diffs, "neon")
		}
	}
	if len(diffs) == 0 {
		return ""
	}
	return "x/sys/cpu and cpuid disagree on " + strings.Join(diffs, ", ")
}

func printTiers(w io.Writer, features cpu.Features) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Tier\tWidth\tLevel\tSupported\n")
	fmt.Fprintf(tw, "----\t-----\t-----\t---------\n")
	for _, t := range registry.Tiers() {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%v\n", t.Name, t.Width, t.Level, cpu.Supports(features, t.Level))
	}
	if len(registry.Tiers()) == 0 {
		fmt.Fprintf(tw, "(none)\t-\t-\t-\n")
	}
	tw.Flush()
}

func printEntries(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tTier\tNeeds\tPriority\tPairs\tBitwise\n")
	fmt.Fprintf(tw, "------\t----\t-----\t--------\t-----\t-------\n")
	for _, e := range registry.Global.ListEntries() {
		ops := make([]string, 0, len(e.Bitwise))
		for _, op := range []numeric.BitwiseOp{numeric.OpAnd, numeric.OpOr, numeric.OpXor, numeric.OpAndNot, numeric.OpNot} {
			if e.Bitwise[op] != nil {
				ops = append(ops, op.String())
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", e.Name, e.Tier, e.Level, e.Priority, len(e.Convert), strings.Join(ops, ","))
	}
	tw.Flush()
}

func printResults(w io.Writer, results []tierResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Check\tRuns\tVectorized\tMismatches\tMax f64 residual\n")
	fmt.Fprintf(tw, "-----\t----\t----------\t----------\t----------------\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%g\n", r.Tier, r.Runs, r.Vectorized, r.Mismatches, r.Residual)
	}
	tw.Flush()
}

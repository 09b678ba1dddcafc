// Package sse2 provides the 128-bit assembly kernels of the sse2 tier.
//
// Only SSE2 instructions are used, so the kernels run on every amd64 CPU.
// Integer widening needs the SSE4.1 PMOVZX/PMOVSX family and is left to the
// portable lane kernels of the tier.
package sse2

// Name identifies the entries registered by this package.
const Name = "sse2"

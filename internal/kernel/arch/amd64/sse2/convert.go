//go:build amd64 && !purego

package sse2

// int32ToFloat32SSE2 converts len(src)/16 blocks of four int32 values with
// CVTDQ2PS (implemented in convert.s).
//
//go:noescape
func int32ToFloat32SSE2(dst, src []byte)

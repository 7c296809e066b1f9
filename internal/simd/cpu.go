// Package simd provides the byte-lane equality primitives the scanner's
// candidate builder and consumer are built on, plus a one-time CPU feature
// probe used only for diagnostics.
//
// There is presently one implementation: a portable SWAR (SIMD-within-a-
// register) routine that processes a 64-byte chunk as eight uint64 lanes.
// The feature probe below is wired up so a future //go:build amd64 AVX2
// routine has a dispatch point to plug into, exactly like the teacher's own
// simd.Memchr does for its AVX2/generic split — but no such routine exists
// yet here.
package simd

import "golang.org/x/sys/cpu"

// Feature flags, probed once at package init. These are read-only after
// init and safe to share across goroutines.
var (
	hasAVX2  = cpu.X86.HasAVX2
	hasSSE42 = cpu.X86.HasSSE42
	hasNEON  = cpu.ARM64.HasASIMD
)

// Implementation reports which byte-lane strategy this process would
// dispatch to. It exists for diagnostics (see cmd/patternscan) and does not
// affect scan results: every arch currently routes through the same
// portable SWAR implementation below.
func Implementation() string {
	switch {
	case hasAVX2:
		return "swar (avx2 available, unused)"
	case hasSSE42:
		return "swar (sse4.2 available, unused)"
	case hasNEON:
		return "swar (neon available, unused)"
	default:
		return "swar"
	}
}

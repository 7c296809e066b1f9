package patterns

import (
	"github.com/greaka/patterns/internal/bitmask"
	"github.com/greaka/patterns/internal/simd"
)

// loadWindow copies up to ChunkWidth bytes starting at offset into a
// zero-padded Chunk and reports how many of those bytes were real data.
// Unlike the reference scanner's aligned/unaligned pointer loads, Go slice
// access needs no hardware alignment, so this is always a plain bounded copy.
func loadWindow(data []byte, offset int) (simd.Chunk, int) {
	var chunk simd.Chunk
	if offset >= len(data) {
		return chunk, 0
	}
	avail := len(data) - offset
	if avail > simd.ChunkWidth {
		avail = simd.ChunkWidth
	}
	copy(chunk[:avail], data[offset:offset+avail])
	return chunk, avail
}

// buildCandidatesFast computes the candidate mask for a window that is fully
// inside data: every position is real data, so no boundary clipping is
// needed. One bit per alignment group is set where that group's anchor
// bytes matched (or were wildcard).
func buildCandidatesFast(chunk simd.Chunk, p *CompiledPattern) bitmask.Mask {
	search := simd.EqMask(chunk, p.firstBytes) | p.firstBytesMask
	return bitmask.ReduceByAlignment(search, p.alignment)
}

// buildCandidatesSafe computes the candidate mask for a window that extends
// past the end of data (avail < ChunkWidth real bytes). It suppresses any
// alignment group whose anchor bytes fall even partially past avail, unless
// the rest of that group is already covered by wildcards.
func buildCandidatesSafe(chunk simd.Chunk, avail int, p *CompiledPattern) bitmask.Mask {
	search := simd.EqMask(chunk, p.firstBytes) | p.firstBytesMask
	lenMask := bitmask.LengthMask(avail)
	clip := bitmask.MinLenMask(lenMask, p.firstBytesMask, p.alignment)
	return bitmask.ReduceByAlignment(search&clip, p.alignment)
}

// matchAt verifies a full pattern match at a candidate start position. It
// returns false for any position that isn't fully contained in data,
// including negative positions produced when a candidate's anchor group sits
// before the pattern's own first required byte.
func (p *CompiledPattern) matchAt(data []byte, pos int) bool {
	if pos < 0 || pos+int(p.length) > len(data) {
		return false
	}
	var chunk simd.Chunk
	copy(chunk[:p.length], data[pos:pos+int(p.length)])
	eq := simd.EqMask(chunk, p.bytes)
	return eq&p.mask == p.mask
}

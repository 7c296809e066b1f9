package patterns

import (
	"math/bits"

	"github.com/greaka/patterns/internal/bitmask"
	"github.com/greaka/patterns/internal/conv"
	"github.com/greaka/patterns/internal/simd"
)

// ChunkWidth is the number of bytes a scan processes per comparison step. It
// is also the hard upper bound on pattern length: the compiled pattern's
// anchor template, candidate mask, and scan window are all exactly this wide.
//
// The reference implementation this package is ported from makes this value
// (and the alignment) const-generic parameters of its Pattern type. Go has no
// const generics, so ChunkWidth is fixed at the SWAR lane width used by
// internal/simd, and alignment becomes an ordinary runtime field instead.
const ChunkWidth = simd.ChunkWidth

// CompiledPattern is a prepared byte pattern, ready to scan any number of
// byte slices for masked matches. A CompiledPattern is immutable after
// construction and safe for concurrent use by multiple goroutines.
type CompiledPattern struct {
	// bytes holds the pattern's concrete byte values, zero at wildcard and
	// past-length positions.
	bytes simd.Chunk
	// mask has bit i set iff bytes[i] is a required (non-wildcard) byte.
	mask bitmask.Mask
	// firstBytes is the densest alignment-group of required bytes,
	// replicated across all ChunkWidth/alignment groups so a single
	// ChunkWidth-wide compare tests every alignment phase in one pass.
	firstBytes simd.Chunk
	// firstBytesMask is the complement of firstBytes' required-byte mask:
	// bit i set means position i in firstBytes is a wildcard and always
	// counts as a candidate match.
	firstBytesMask bitmask.Mask
	// firstByteOffset is the index into bytes/mask where the anchor group
	// (firstBytes' source group) starts.
	firstByteOffset uint8
	// length is the number of tokens the pattern was compiled from.
	length uint8
	// alignment is the required byte alignment of a match's start offset.
	alignment uint8
}

// Length returns the number of bytes the pattern spans.
func (p *CompiledPattern) Length() int { return int(p.length) }

// Alignment returns the required alignment of a match's start offset.
func (p *CompiledPattern) Alignment() int { return int(p.alignment) }

// FromBytes builds a CompiledPattern from concrete byte values and a bitmask
// of which positions are required. Bit i of mask set means data[i] must
// match exactly; bit i clear means position i is a wildcard. data longer
// than ChunkWidth is truncated, and mask is trimmed to the truncated length.
//
// alignment must be one of 1, 2, 4, 8, 16, 32, 64.
func FromBytes(data []byte, mask bitmask.Mask, alignment int) (*CompiledPattern, error) {
	a, err := validateAlignment(alignment)
	if err != nil {
		return nil, err
	}

	length := len(data)
	if length > ChunkWidth {
		length = ChunkWidth
	}
	mask &= bitmask.LengthMask(length)

	var bytes simd.Chunk
	copy(bytes[:length], data[:length])

	offset, err := findFirstByteOffset(mask, a)
	if err != nil {
		return nil, err
	}

	firstBytes, firstBytesMask := fillFirstBytes(bytes[offset:], mask>>uint(offset), a)

	return &CompiledPattern{
		bytes:           bytes,
		mask:            mask,
		firstBytes:      firstBytes,
		firstBytesMask:  firstBytesMask,
		firstByteOffset: conv.IntToUint8(offset),
		length:          conv.IntToUint8(length),
		alignment:       conv.IntToUint8(a),
	}, nil
}

// validateAlignment returns a as an int if it is a supported power-of-two
// alignment no greater than ChunkWidth.
func validateAlignment(alignment int) (int, error) {
	if alignment <= 0 || alignment > ChunkWidth || alignment&(alignment-1) != 0 {
		return 0, ErrInvalidAlignment
	}
	return alignment, nil
}

// findFirstByteOffset scans mask in alignment-sized groups and returns the
// offset of the group with the most required bytes. Ties favor the
// lowest-offset (earliest) group, matching the reference implementation.
//
// It returns ErrMissingNonWildcardByte if mask is entirely zero.
func findFirstByteOffset(mask bitmask.Mask, alignment int) (int, error) {
	assertf(alignment > 0 && alignment <= ChunkWidth && alignment&(alignment-1) == 0,
		"findFirstByteOffset: alignment %d is not a validated power-of-two <= ChunkWidth", alignment)

	alignMask := bitmask.LengthMask(alignment)

	best := -1
	bestCount := 0
	for i := 0; mask != 0; i++ {
		chunk := mask & alignMask
		if alignment >= bitmask.Width {
			mask = 0
		} else {
			mask >>= uint(alignment)
		}

		count := bits.OnesCount64(chunk)
		if count > bestCount {
			bestCount = count
			best = i
		}
	}

	if bestCount == 0 {
		return 0, ErrMissingNonWildcardByte
	}
	return best * alignment, nil
}

// fillFirstBytes replicates chunk's first `alignment` bytes (the anchor
// group) across every alignment-sized slot of a ChunkWidth-wide template, and
// builds the matching wildcard mask the same way: a template bit is set
// (meaning "always matches") wherever the source mask bit is clear.
func fillFirstBytes(chunk []byte, mask bitmask.Mask, alignment int) (simd.Chunk, bitmask.Mask) {
	var first simd.Chunk
	var firstMask bitmask.Mask

	groups := ChunkWidth / alignment
	for i := 0; i < groups; i++ {
		for j := 0; j < alignment; j++ {
			first[i*alignment+j] = chunk[j]
			if mask>>uint(j)&1 == 0 {
				firstMask |= 1 << uint(i*alignment+j)
			}
		}
	}
	return first, firstMask
}

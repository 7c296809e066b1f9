package patterns

import (
	"math/bits"

	"github.com/greaka/patterns/internal/simd"
)

// scanState tracks which phase of the scan a Cursor is in.
type scanState uint8

const (
	// scanFastLoop is processing windows fully inside data.
	scanFastLoop scanState = iota
	// scanTail is processing the final, partially-filled window.
	scanTail
	// scanEnd has no more candidates and will not produce further matches.
	scanEnd
)

// Cursor iterates the match positions of a CompiledPattern over a byte
// slice, one ChunkWidth-sized window at a time. A Cursor holds no references
// beyond its pattern and the data slice it was built from, and is not safe
// for concurrent use — create one Cursor per goroutine via
// CompiledPattern.Scan.
type Cursor struct {
	pattern     *CompiledPattern
	data        []byte
	windowStart int
	candidates  uint64
	state       scanState
}

// Scan returns a Cursor that iterates every match of p in data, in ascending
// order of start position. Overlapping matches are all
// reported: a match at position i does not suppress a match at i+1.
func (p *CompiledPattern) Scan(data []byte) *Cursor {
	c := &Cursor{pattern: p, data: data}
	c.loadWindow(0)
	return c
}

// loadWindow builds the candidate mask for the ChunkWidth-byte window
// starting at offset and records whether this is the final window.
func (c *Cursor) loadWindow(offset int) {
	chunk, avail := loadWindow(c.data, offset)
	c.windowStart = offset
	if avail < simd.ChunkWidth {
		c.candidates = buildCandidatesSafe(chunk, avail, c.pattern)
		c.state = scanTail
	} else {
		c.candidates = buildCandidatesFast(chunk, c.pattern)
		c.state = scanFastLoop
	}
}

// Next advances the cursor and returns the next match position, or
// (0, false) once the data is exhausted. Once Next returns false, every
// subsequent call also returns false.
func (c *Cursor) Next() (int, bool) {
	for {
		assertf(c.windowStart%simd.ChunkWidth == 0,
			"Cursor.Next: windowStart %d is not ChunkWidth-aligned", c.windowStart)

		for c.candidates != 0 {
			bit := bits.TrailingZeros64(c.candidates)
			assertf(bit < simd.ChunkWidth, "Cursor.Next: candidate bit %d out of chunk range", bit)
			c.candidates &^= 1 << uint(bit)

			pos := c.windowStart - int(c.pattern.firstByteOffset) + bit
			assertf(pos < c.windowStart+simd.ChunkWidth,
				"Cursor.Next: computed position %d escapes current window (start %d)", pos, c.windowStart)
			if c.pattern.matchAt(c.data, pos) {
				return pos, true
			}
		}

		if c.state != scanFastLoop {
			c.state = scanEnd
			return 0, false
		}

		next := c.windowStart + simd.ChunkWidth
		if next >= len(c.data) {
			c.state = scanEnd
			return 0, false
		}
		c.loadWindow(next)
	}
}

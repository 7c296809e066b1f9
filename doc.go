// Package patterns provides masked byte-pattern scanning over in-memory
// buffers.
//
// A pattern is a sequence of hex bytes and wildcards ("4D 5A ?? ?? 00 00")
// compiled once with Compile, then scanned against any number of byte
// slices. Matching is exact and exhaustive: every overlapping start position
// that satisfies the pattern's required bytes and alignment is reported, in
// ascending order.
//
// Basic usage:
//
//	pat, err := patterns.Compile("4D 5A ?? ?? 00 00", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cursor := pat.Scan(data)
//	for {
//	    pos, ok := cursor.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println("match at", pos)
//	}
//
// Alignment usage:
//
//	// Only consider matches starting on a 4-byte boundary.
//	pat, err := patterns.Compile("00 ?? ?? ??", 4)
//
// Performance characteristics:
//   - Scanning processes data in ChunkWidth-byte (64) windows using a
//     portable SWAR byte-lane comparison (see internal/simd).
//   - A compiled pattern's densest alignment-group of required bytes is
//     used as a cheap anchor filter before the full mask is checked, so
//     sparse patterns with long wildcard runs do not pay for every byte of
//     wildcard.
//   - Maximum pattern length is ChunkWidth (64) bytes.
package patterns

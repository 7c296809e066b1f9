// Package reference implements a plain, non-SIMD masked byte-pattern scanner
// used as a differential-testing oracle for package patterns. It trades
// every optimization in the main engine for an implementation simple enough
// to trust by inspection: a straight byte-by-byte compare per candidate
// offset, advancing by the pattern's alignment.
package reference

import (
	"strconv"
	"strings"
)

// Pattern is a compiled masked byte pattern. A nil entry in Bytes marks a
// wildcard position.
type Pattern struct {
	Bytes     []*byte
	alignment int
}

// Compile parses a whitespace-separated token string into a Pattern. Each
// token is either a two-hex-digit byte or a wildcard ("?" or "."). alignment
// must be in [1, 64]. Compile panics if alignment is out of range or if the
// pattern contains no concrete byte, mirroring the reference crate's
// debug-assertion contract rather than package patterns' returned errors —
// this package exists purely as an internal oracle, never as a public API.
func Compile(text string, alignment int) (*Pattern, error) {
	if alignment < 1 || alignment > 64 {
		panic("reference: alignment out of range")
	}

	fields := strings.Fields(text)
	bytes := make([]*byte, len(fields))
	hasConcrete := false

	for i, tok := range fields {
		if isWildcard(tok) {
			continue
		}
		if len(tok) != 2 {
			return nil, &strconv.NumError{Func: "ParseUint", Num: tok, Err: strconv.ErrSyntax}
		}
		n, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, err
		}
		b := byte(n)
		bytes[i] = &b
		hasConcrete = true
	}

	if !hasConcrete {
		panic("reference: pattern has no concrete byte")
	}

	return &Pattern{Bytes: bytes, alignment: alignment}, nil
}

func isWildcard(tok string) bool {
	return tok[0] == '.' || tok[0] == '?'
}

// Scanner walks data for occurrences of Pattern, advancing by Pattern's
// alignment between checks.
type Scanner struct {
	pattern *Pattern
	data    []byte
	offset  int
}

// Matches returns a Scanner over data.
func (p *Pattern) Matches(data []byte) *Scanner {
	return &Scanner{pattern: p, data: data, offset: 0}
}

// Next returns the next match offset, or false once data is exhausted.
func (s *Scanner) Next() (int, bool) {
	for s.offset+len(s.pattern.Bytes) <= len(s.data) {
		match := plainMatch(s.pattern, s.data[s.offset:])
		pos := s.offset
		s.offset += s.pattern.alignment
		if match {
			return pos, true
		}
	}
	return 0, false
}

// plainMatch reports whether pattern matches the prefix of data.
// Assumes len(data) >= len(pattern.Bytes).
func plainMatch(pattern *Pattern, data []byte) bool {
	for i, b := range pattern.Bytes {
		if b != nil && *b != data[i] {
			return false
		}
	}
	return true
}

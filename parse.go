package patterns

import (
	"strconv"
	"strings"

	"github.com/greaka/patterns/internal/bitmask"
)

// Compile parses a whitespace-separated pattern string into a CompiledPattern.
// Each token is either a two-digit hex byte ("4D", "4d") or a wildcard ("?"
// or "??", and more generally any token starting with '.' or '?'). A pattern
// may contain at most ChunkWidth tokens and must contain at least one
// non-wildcard byte.
//
//	Compile("4D 5A ?? ?? 00", 1)
//
// alignment constrains which byte offsets a match may start at; pass 1 for
// unaligned scanning.
func Compile(text string, alignment int) (*CompiledPattern, error) {
	tokens := strings.Fields(text)
	if len(tokens) > ChunkWidth {
		return nil, ErrPatternTooLong
	}

	var bytes [ChunkWidth]byte
	var mask bitmask.Mask
	for i, tok := range tokens {
		if isWildcard(tok) {
			continue
		}
		b, err := hexToByte(tok)
		if err != nil {
			return nil, &ParseError{
				Kind:       InvalidHexNumber,
				Message:    ErrInvalidHexNumber.Message,
				Token:      tok,
				TokenIndex: i,
			}
		}
		bytes[i] = b
		mask |= 1 << uint(i)
	}

	return FromBytes(bytes[:len(tokens)], mask, alignment)
}

// isWildcard reports whether tok denotes a wildcard token. Only the first
// byte is significant, so "?", "??", ".", and ".." are all wildcards.
func isWildcard(tok string) bool {
	c := tok[0]
	return c == '?' || c == '.'
}

// hexToByte parses a two-digit, case-insensitive hex token into a byte.
func hexToByte(tok string) (byte, error) {
	if len(tok) != 2 {
		return 0, ErrInvalidHexNumber
	}
	n, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, ErrInvalidHexNumber
	}
	return byte(n), nil
}

//go:build patterns_debug

package patterns

import "fmt"

// assertf panics with a formatted message when cond is false. It compiles to
// nothing unless the patterns_debug build tag is set, mirroring the
// debug_assert_opt! contract checks in the reference scanner: a violation
// here means an internal invariant broke, not that the input was unusual.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("patterns: internal invariant violated: "+format, args...))
	}
}

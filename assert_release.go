//go:build !patterns_debug

package patterns

// assertf is a no-op outside the patterns_debug build tag: the hot scanning
// path pays nothing for invariant checks in a normal build.
func assertf(cond bool, format string, args ...any) {}

package patterns

import "github.com/greaka/patterns/internal/simd"

// Implementation reports which byte-lane comparison strategy this process
// would use. It is a diagnostic only: every platform currently scans through
// the same portable implementation, so this never affects match results.
func Implementation() string {
	return simd.Implementation()
}

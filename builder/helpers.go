// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import "fmt"

// builderErrorf prefixes err with the constructor name and a short reason,
// keeping the sentinel reachable through errors.Is.
//
//	builderErrorf(MethodRandomSparse, "rng is required", ErrNeedRandSource)
//	→ "RandomSparse: rng is required: builder: rng is required"
func builderErrorf(method, reason string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, reason, err)
}

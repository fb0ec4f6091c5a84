// Package builder provides validation helpers used by option constructors.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns an error "<Method>: parameter must be ≥ <min>, got <got>" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d", method, min, got)
	}

	return nil
}

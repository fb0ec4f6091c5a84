// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Errors produced by a container (e.g. collection.ErrIndexOutOfRange) are
//     recorded as-is; the builder adds no wrapping of its own.
//   • Builders never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrNilContainer indicates that ListOf/MapOf/SetOf received a nil container.
// The builder records it and ignores every later mutator.
// Usage: if errors.Is(b.Err(), ErrNilContainer) { /* supply a container */ }.
var ErrNilContainer = errors.New("builder: nil container")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <sentinel message>".
//
// Complexity: O(1).
func builderErrorf(method string, sentinel error) error {
	return fmt.Errorf("%s: %w", method, sentinel)
}

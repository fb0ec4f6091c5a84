// SPDX-License-Identifier: MIT
//
// File: slice.go
// Role: Slice-backed Sequence.
// Ownership:
//   - Slice holds a pointer to the caller's slice header, so growth performed
//     by Append/Insert is written back and visible through the caller's variable.

package collection

import (
	"iter"
	"slices"
)

// MethodSliceInsert prefixes errors raised by Slice.Insert.
const MethodSliceInsert = "Slice.Insert"

// Slice is a Sequence over a Go slice. The zero value is not usable; build
// one with NewSlice or SliceOf.
type Slice[T any] struct {
	items *[]T
}

// NewSlice allocates an empty Slice with room for capacity elements.
// Negative capacity is treated as zero.
// Complexity: O(capacity) space.
func NewSlice[T any](capacity int) *Slice[T] {
	if capacity < 0 {
		capacity = 0
	}
	items := make([]T, 0, capacity)

	return &Slice[T]{items: &items}
}

// SliceOf wraps the caller's slice variable without copying it.
// Every mutation assigns the resulting slice back to *p, so the caller keeps
// observing the current contents. A nil p yields a fresh, unshared Slice.
func SliceOf[T any](p *[]T) *Slice[T] {
	if p == nil {
		return NewSlice[T](0)
	}

	return &Slice[T]{items: p}
}

// Len returns the number of elements. O(1).
func (s *Slice[T]) Len() int { return len(*s.items) }

// Append adds items to the end. Amortized O(len(items)).
func (s *Slice[T]) Append(items ...T) {
	*s.items = append(*s.items, items...)
}

// Insert places items at index, shifting the tail right.
//
// Errors:
//   - ErrIndexOutOfRange if index ∉ [0, Len()]; the slice is untouched.
//
// Complexity: O(Len() + len(items)).
func (s *Slice[T]) Insert(index int, items ...T) error {
	if err := checkIndex(MethodSliceInsert, index, len(*s.items)); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	*s.items = slices.Insert(*s.items, index, items...)

	return nil
}

// All iterates the elements in order.
func (s *Slice[T]) All() iter.Seq[T] {
	return slices.Values(*s.items)
}

// Values returns the backing slice itself (no copy).
func (s *Slice[T]) Values() []T { return *s.items }

// IsNil reports whether the receiver is a nil *Slice.
func (s *Slice[T]) IsNil() bool { return s == nil || s.items == nil }

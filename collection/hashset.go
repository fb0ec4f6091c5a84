// SPDX-License-Identifier: MIT
//
// File: hashset.go
// Role: Set over k8s.io/apimachinery sets.Set.

package collection

import (
	"iter"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"
)

// HashSet is a Set over sets.Set[T]. HashSet[T](s) shares s with the caller.
type HashSet[T comparable] sets.Set[T]

// NewHashSet allocates an empty HashSet sized for capacity elements.
// Negative capacity is treated as zero.
func NewHashSet[T comparable](capacity int) HashSet[T] {
	if capacity < 0 {
		capacity = 0
	}

	return make(HashSet[T], capacity)
}

// HashSetOf wraps s without copying it. A nil s yields a fresh set.
func HashSetOf[T comparable](s sets.Set[T]) HashSet[T] {
	if s == nil {
		return NewHashSet[T](0)
	}

	return HashSet[T](s)
}

// Len returns the number of distinct elements. O(1).
func (s HashSet[T]) Len() int { return len(s) }

// Insert adds items; duplicates are absorbed. O(len(items)) average.
func (s HashSet[T]) Insert(items ...T) { sets.Set[T](s).Insert(items...) }

// Has reports membership. O(1) average.
func (s HashSet[T]) Has(item T) bool { return sets.Set[T](s).Has(item) }

// All iterates the elements in Go's randomized map order.
func (s HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

// Sorted returns the elements ordered by cmp. Useful for deterministic output.
// Complexity: O(n log n).
func (s HashSet[T]) Sorted(cmp func(a, b T) int) []T {
	out := sets.Set[T](s).UnsortedList()
	slices.SortFunc(out, cmp)

	return out
}

// Items returns the backing sets.Set itself (no copy).
func (s HashSet[T]) Items() sets.Set[T] { return sets.Set[T](s) }

// IsNil reports whether s is a nil set (writes would panic).
func (s HashSet[T]) IsNil() bool { return s == nil }

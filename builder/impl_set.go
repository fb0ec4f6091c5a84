// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// impl_set.go — SetBuilder: fluent population of a collection.Set.

package builder

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvcollect/collection"
)

// SetBuilder inserts into a collection.Set. Equal items are absorbed.
type SetBuilder[T comparable] struct {
	set collection.Set[T]
	err error
}

// Add inserts zero or more items, each de-duplicated against the current
// contents.
func (b *SetBuilder[T]) Add(items ...T) *SetBuilder[T] {
	if b.err != nil || len(items) == 0 {
		return b
	}
	b.set.Insert(items...)

	return b
}

// AddAll inserts every item of items. A nil iterator is treated as empty.
func (b *SetBuilder[T]) AddAll(items iter.Seq[T]) *SetBuilder[T] {
	if b.err != nil || items == nil {
		return b
	}

	return b.Add(slices.Collect(items)...)
}

// Err returns the first error recorded by the chain, or nil. The error is
// never cleared: once it is set every later mutator is a no-op, so a failed
// builder cannot be reused. Start a new one over the same container instead.
func (b *SetBuilder[T]) Err() error { return b.err }

// Build returns the set itself (no copy).
func (b *SetBuilder[T]) Build() collection.Set[T] { return b.set }

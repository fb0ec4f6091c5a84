// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// impl_list.go — ListBuilder: fluent population of a collection.Sequence.

package builder

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvcollect/collection"
)

// ListBuilder appends to, and inserts into, a collection.Sequence.
// Insertion order is preserved and duplicates are kept.
type ListBuilder[T any] struct {
	seq collection.Sequence[T]
	err error
}

// Add appends zero or more items in argument order. Pass a slice with xs...
// Complexity: amortized O(len(items)) for slice-backed sequences.
func (b *ListBuilder[T]) Add(items ...T) *ListBuilder[T] {
	if b.err != nil || len(items) == 0 {
		return b
	}
	b.seq.Append(items...)

	return b
}

// AddAll appends every item of items in iteration order.
// A nil iterator is treated as empty.
func (b *ListBuilder[T]) AddAll(items iter.Seq[T]) *ListBuilder[T] {
	if b.err != nil || items == nil {
		return b
	}

	return b.Add(slices.Collect(items)...)
}

// AddAllAt inserts every item of items starting at index, preserving their
// relative order. The index is validated by the sequence before any element
// moves: on collection.ErrIndexOutOfRange the sequence is unchanged and the
// error is recorded as returned.
// Complexity: O(Len() + len(items)) for slice-backed sequences.
func (b *ListBuilder[T]) AddAllAt(index int, items iter.Seq[T]) *ListBuilder[T] {
	if b.err != nil {
		return b
	}

	var batch []T
	if items != nil {
		batch = slices.Collect(items)
	}
	if err := b.seq.Insert(index, batch...); err != nil {
		b.err = err
	}

	return b
}

// Err returns the first error recorded by the chain, or nil. The error is
// never cleared: once it is set every later mutator is a no-op, so a failed
// builder cannot be reused. Start a new one over the same container instead.
func (b *ListBuilder[T]) Err() error { return b.err }

// Build returns the sequence itself (no copy). It is nil only when the
// builder was created over a nil container.
func (b *ListBuilder[T]) Build() collection.Sequence[T] { return b.seq }

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Container contracts and sentinel errors.
// Policy:
//   - Contracts are minimal: only what a builder needs to populate a container
//     plus the reads needed to observe it.
//   - Positional failures are reported through ErrIndexOutOfRange; nothing panics.

package collection

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange indicates a positional insert outside [0, Len()].
var ErrIndexOutOfRange = errors.New("collection: index out of range")

// Sequence is an ordered, duplicate-permitting container.
//
// Invariants:
//   - All() yields elements in insertion order, honoring positional inserts.
//   - Insert validates index before touching the container; on error the
//     contents are unchanged.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int
	// Append adds items to the end in argument order.
	Append(items ...T)
	// Insert places items starting at index, preserving their relative order.
	// index must be within [0, Len()]; otherwise ErrIndexOutOfRange is returned.
	Insert(index int, items ...T) error
	// All iterates the elements in order.
	All() iter.Seq[T]
}

// Mapping is a key→value container with unique keys.
type Mapping[K comparable, V any] interface {
	// Len returns the number of entries.
	Len() int
	// Put inserts the entry or overwrites the value stored for key.
	Put(key K, value V)
	// Get returns the value stored for key and whether it was present.
	Get(key K) (V, bool)
	// All iterates the entries in no particular order.
	All() iter.Seq2[K, V]
}

// Set is a container of unique elements.
type Set[T comparable] interface {
	// Len returns the number of distinct elements.
	Len() int
	// Insert adds items; elements already present are absorbed.
	Insert(items ...T)
	// Has reports membership.
	Has(item T) bool
	// All iterates the elements in no particular order.
	All() iter.Seq[T]
}

// checkIndex validates a positional insert target against length n.
// Complexity: O(1).
func checkIndex(method string, index, n int) error {
	if index < 0 || index > n {
		return fmt.Errorf("%s: index %d not in [0,%d]: %w", method, index, n, ErrIndexOutOfRange)
	}

	return nil
}

// Compile-time contract checks.
var (
	_ Sequence[int]     = (*Slice[int])(nil)
	_ Sequence[int]     = (*Linked[int])(nil)
	_ Mapping[int, int] = HashMap[int, int](nil)
	_ Mapping[int, int] = (*Sharded[int, int])(nil)
	_ Set[int]          = HashSet[int](nil)
)

// Nilable is implemented by containers that can be nil while stored inside a
// non-nil interface value (typed nil pointers, nil maps).
type Nilable interface {
	IsNil() bool
}

// IsNil reports whether c is nil or a typed nil container. Reflect-free.
func IsNil(c any) bool {
	if c == nil {
		return true
	}
	if n, ok := c.(Nilable); ok {
		return n.IsNil()
	}

	return false
}

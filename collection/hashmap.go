// SPDX-License-Identifier: MIT
//
// File: hashmap.go
// Role: Mapping over a plain Go map.

package collection

import (
	"iter"
	"maps"
)

// HashMap is a Mapping over map[K]V. Since Go maps are reference values, a
// conversion HashMap[K, V](m) shares m with the caller.
type HashMap[K comparable, V any] map[K]V

// NewHashMap allocates an empty HashMap sized for capacity entries.
// Negative capacity is treated as zero.
func NewHashMap[K comparable, V any](capacity int) HashMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return make(HashMap[K, V], capacity)
}

// HashMapOf wraps m without copying it. A nil m yields a fresh map, since
// writes to a nil map would panic.
func HashMapOf[K comparable, V any](m map[K]V) HashMap[K, V] {
	if m == nil {
		return NewHashMap[K, V](0)
	}

	return HashMap[K, V](m)
}

// Len returns the number of entries. O(1).
func (m HashMap[K, V]) Len() int { return len(m) }

// Put inserts or overwrites the entry for key. O(1) average.
func (m HashMap[K, V]) Put(key K, value V) { m[key] = value }

// Get returns the value stored for key. O(1) average.
func (m HashMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// All iterates entries in Go's randomized map order.
func (m HashMap[K, V]) All() iter.Seq2[K, V] {
	return maps.All(map[K]V(m))
}

// IsNil reports whether m is a nil map (writes would panic).
func (m HashMap[K, V]) IsNil() bool { return m == nil }

// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// impl_map.go — MapBuilder: fluent population of a collection.Mapping.

package builder

import (
	"iter"
	"maps"

	"github.com/katalvlaran/lvcollect/collection"
)

// MapBuilder puts entries into a collection.Mapping. Keys are unique; a
// later Put for an existing key overwrites its value.
type MapBuilder[K comparable, V any] struct {
	m   collection.Mapping[K, V]
	err error
}

// Put inserts or overwrites the entry for key.
func (b *MapBuilder[K, V]) Put(key K, value V) *MapBuilder[K, V] {
	if b.err != nil {
		return b
	}
	b.m.Put(key, value)

	return b
}

// PutAll puts every entry of other in iteration order; when other yields a
// key more than once, the last value wins. A nil iterator is treated as empty.
// Use maps.All(m) or Mapping.All() as the source.
func (b *MapBuilder[K, V]) PutAll(other iter.Seq2[K, V]) *MapBuilder[K, V] {
	if b.err != nil || other == nil {
		return b
	}
	for k, v := range other {
		b.m.Put(k, v)
	}

	return b
}

// PutMap puts every entry of other. A nil map is a no-op.
func (b *MapBuilder[K, V]) PutMap(other map[K]V) *MapBuilder[K, V] {
	return b.PutAll(maps.All(other))
}

// Err returns the first error recorded by the chain, or nil. The error is
// never cleared: once it is set every later mutator is a no-op, so a failed
// builder cannot be reused. Start a new one over the same container instead.
func (b *MapBuilder[K, V]) Err() error { return b.err }

// Build returns the mapping itself (no copy).
func (b *MapBuilder[K, V]) Build() collection.Mapping[K, V] { return b.m }

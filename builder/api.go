// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Two construction paths per builder: New* allocates an owned default
//     container shaped by Options; *Of shares a caller-supplied container.
//   - *From variants are shorthands that wrap a plain slice / map / sets.Set
//     with the matching collection type before calling *Of.
//   - Constructors never panic; a nil container is recorded as ErrNilContainer.

package builder

import (
	"github.com/katalvlaran/lvcollect/collection"
	"k8s.io/apimachinery/pkg/util/sets"
)

// NewList returns a ListBuilder over a fresh sequence: a collection.Slice
// pre-sized by WithCapacity, or a collection.Linked with WithLinkedList.
// Complexity: O(len(opts)) + O(capacity) space.
func NewList[T any](opts ...Option) *ListBuilder[T] {
	cfg := newBuilderConfig(opts...)
	if cfg.linked {
		return &ListBuilder[T]{seq: collection.NewLinked[T]()}
	}

	return &ListBuilder[T]{seq: collection.NewSlice[T](cfg.capacity)}
}

// ListOf returns a ListBuilder that mutates seq in place. The caller keeps
// its reference and observes every mutation made through the builder.
// A nil seq records ErrNilContainer.
func ListOf[T any](seq collection.Sequence[T]) *ListBuilder[T] {
	if collection.IsNil(seq) {
		return &ListBuilder[T]{err: builderErrorf(MethodListOf, ErrNilContainer)}
	}

	return &ListBuilder[T]{seq: seq}
}

// ListFrom shares the caller's slice variable: after each call *p holds the
// current contents. A nil p records ErrNilContainer.
func ListFrom[T any](p *[]T) *ListBuilder[T] {
	if p == nil {
		return ListOf[T](nil)
	}

	return ListOf[T](collection.SliceOf(p))
}

// NewMap returns a MapBuilder over a fresh mapping: a collection.HashMap
// pre-sized by WithCapacity, or a collection.Sharded with WithSharded.
func NewMap[K comparable, V any](opts ...Option) *MapBuilder[K, V] {
	cfg := newBuilderConfig(opts...)
	if cfg.sharded {
		return &MapBuilder[K, V]{m: collection.NewSharded[K, V]()}
	}

	return &MapBuilder[K, V]{m: collection.NewHashMap[K, V](cfg.capacity)}
}

// MapOf returns a MapBuilder that mutates m in place.
// A nil m (including a nil HashMap, or a Sharded over a zero ConcurrentMap)
// records ErrNilContainer.
func MapOf[K comparable, V any](m collection.Mapping[K, V]) *MapBuilder[K, V] {
	if collection.IsNil(m) {
		return &MapBuilder[K, V]{err: builderErrorf(MethodMapOf, ErrNilContainer)}
	}

	return &MapBuilder[K, V]{m: m}
}

// MapFrom shares the caller's map. A nil m records ErrNilContainer, since
// writes to a nil map cannot be observed by the caller.
func MapFrom[K comparable, V any](m map[K]V) *MapBuilder[K, V] {
	return MapOf[K, V](collection.HashMap[K, V](m))
}

// NewSet returns a SetBuilder over a fresh collection.HashSet pre-sized by
// WithCapacity.
func NewSet[T comparable](opts ...Option) *SetBuilder[T] {
	cfg := newBuilderConfig(opts...)

	return &SetBuilder[T]{set: collection.NewHashSet[T](cfg.capacity)}
}

// SetOf returns a SetBuilder that mutates s in place.
// A nil s records ErrNilContainer.
func SetOf[T comparable](s collection.Set[T]) *SetBuilder[T] {
	if collection.IsNil(s) {
		return &SetBuilder[T]{err: builderErrorf(MethodSetOf, ErrNilContainer)}
	}

	return &SetBuilder[T]{set: s}
}

// SetFrom shares the caller's sets.Set. A nil s records ErrNilContainer.
func SetFrom[T comparable](s sets.Set[T]) *SetBuilder[T] {
	return SetOf[T](collection.HashSet[T](s))
}

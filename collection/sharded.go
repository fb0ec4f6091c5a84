// SPDX-License-Identifier: MIT
//
// File: sharded.go
// Role: Mapping over a sharded concurrent map.
// Concurrency:
//   - Put/Get/Len are safe for concurrent use (per-shard RW locks in cmap).
//   - All() ranges over cmap's buffered snapshot; the snapshot goroutines run to
//     completion even when the caller stops early, so nothing is left behind.

package collection

import (
	"hash/maphash"
	"iter"
	"reflect"

	"github.com/cespare/xxhash/v2"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Sharded is a Mapping over cmap.ConcurrentMap. String keys are spread across
// shards with xxhash; every other comparable key with maphash.Comparable.
type Sharded[K comparable, V any] struct {
	m cmap.ConcurrentMap[K, V]
}

// NewSharded returns an empty Sharded mapping using ShardKey for placement.
func NewSharded[K comparable, V any]() *Sharded[K, V] {
	return &Sharded[K, V]{m: cmap.NewWithCustomShardingFunction[K, V](ShardKey[K])}
}

// ShardedOf wraps an existing concurrent map without copying it. m must have
// been created by one of the cmap constructors: the zero ConcurrentMap has no
// shards, and the result then reports IsNil.
func ShardedOf[K comparable, V any](m cmap.ConcurrentMap[K, V]) *Sharded[K, V] {
	return &Sharded[K, V]{m: m}
}

// shardSeed is fixed for the process so a key keeps its shard.
var shardSeed = maphash.MakeSeed()

// ShardKey maps a key to a 32-bit shard hash. Keys equal under == always
// land in the same shard. Pointers hash by address, never by the value
// they point to.
func ShardKey[K comparable](key K) uint32 {
	var h uint64
	if k, ok := any(key).(string); ok {
		h = xxhash.Sum64String(k)
	} else {
		h = maphash.Comparable(shardSeed, key)
	}

	return uint32(h ^ h>>32)
}

// Len returns the number of entries across all shards.
func (s *Sharded[K, V]) Len() int { return s.m.Count() }

// Put inserts or overwrites the entry for key.
func (s *Sharded[K, V]) Put(key K, value V) { s.m.Set(key, value) }

// Get returns the value stored for key.
func (s *Sharded[K, V]) Get(key K) (V, bool) { return s.m.Get(key) }

// All iterates a point-in-time snapshot of the entries.
func (s *Sharded[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for t := range s.m.IterBuffered() {
			if !yield(t.Key, t.Val) {
				return
			}
		}
	}
}

// Items returns a snapshot copy of all entries as a plain map.
func (s *Sharded[K, V]) Items() map[K]V { return s.m.Items() }

// Map returns the backing concurrent map itself (no copy).
func (s *Sharded[K, V]) Map() cmap.ConcurrentMap[K, V] { return s.m }

// IsNil reports whether the receiver is a nil *Sharded or wraps a zero
// ConcurrentMap, which has no shards to write to.
func (s *Sharded[K, V]) IsNil() bool {
	return s == nil || reflect.ValueOf(s.m).IsZero()
}

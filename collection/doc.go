// Package collection defines the container contracts that lvcollect builders
// populate, together with their concrete implementations.
//
// Contracts:
//
//	Sequence[T]    ordered, duplicate-permitting, indexable by position
//	Mapping[K,V]   unique keys, last write wins
//	Set[T]         unique elements, no iteration order guarantee
//
// Implementations:
//
//	– Slice[T]       Sequence over *[]T. Amortized O(1) Append.
//	– Linked[T]      Sequence over container/list (doubly-linked).
//	– HashMap[K,V]   Mapping over a plain Go map.
//	– Sharded[K,V]   Mapping over a sharded concurrent map (orcaman/concurrent-map).
//	– HashSet[T]     Set over k8s.io/apimachinery sets.Set.
//
// Shared ownership:
//
//	Every implementation has a constructor (or a plain conversion) that wraps
//	a store the caller already holds. No copy is made: mutations through the
//	wrapper are visible through the caller's reference and vice versa.
//
//	var ids []string
//	seq := collection.SliceOf(&ids)
//	seq.Append("a", "b")          // ids == [a b]
//
// Concurrency:
//
//	Slice, Linked, HashMap and HashSet are not safe for concurrent use.
//	Sharded is, per its backing map; its All() iterator works on a snapshot.
//
// Errors:
//
//	ErrIndexOutOfRange - positional Insert outside [0, Len()].
package collection

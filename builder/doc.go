// Package builder provides fluent, chainable builders that populate the
// containers defined in lvcollect/collection.
//
// The package offers the following key components:
//
//   - Builders:
//     – ListBuilder[T]:   appends and positional inserts into a collection.Sequence.
//     – MapBuilder[K,V]:  puts into a collection.Mapping (last write wins).
//     – SetBuilder[T]:    inserts into a collection.Set (duplicates absorbed).
//   - Construction paths (two per builder):
//     – NewList / NewMap / NewSet:  allocate an owned default container.
//     – ListOf / MapOf / SetOf:     share a caller-supplied container.
//     – ListFrom / MapFrom / SetFrom: share a plain slice / map / sets.Set.
//   - Configuration primitives:
//     – Option:          a function that mutates builderConfig before use.
//     – WithCapacity:    pre-size the default container.
//     – WithLinkedList:  default sequence is a doubly-linked list.
//     – WithSharded:     default mapping is a sharded concurrent map.
//
// Guarantees:
//
//   - Every mutator returns the same builder pointer, so calls chain.
//   - Build returns the container itself; no copy, no freeze. The container
//     stays mutable after Build, and the builder may keep populating it.
//   - Errors raised by a container are recorded unchanged and surface via Err;
//     once an error is recorded, later mutators are no-ops and the builder
//     cannot be reset. Start a new builder over the same container to go on.
//   - Option constructors panic on meaningless values; builders never panic.
//     A caller-supplied container that cannot take writes (nil, or a Sharded
//     over a zero ConcurrentMap) is recorded as ErrNilContainer.
//
// Builders are not safe for concurrent use.
//
//	names := builder.NewList[string]().Add("A", "B", "C").Add("D").Build()
//	ages := builder.NewMap[string, int]().Put("A", 1).Put("A", 3).Build()
//	tags := builder.NewSet[string]().Add("x", "y", "x").Build()
package builder

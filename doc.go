// Package lvcollect is a small toolkit for populating Go collections through
// fluent, chainable builders.
//
// What is inside?
//
//	builder/     — ListBuilder, MapBuilder, SetBuilder + functional options
//	collection/  — Sequence, Mapping, Set contracts and their implementations
//	               (slice, linked list, hash map, sharded map, hash set)
//	examples/    — a runnable end-to-end demo
//
// Why use it?
//
//   - One chain per container: NewList[string]().Add("A", "B").Add("C").Build()
//   - Shared ownership: wrap a slice, map or set you already hold and watch it
//     fill in place; Build hands back the very same container.
//   - Errors, not panics: a rejected positional insert is recorded on the
//     builder and read once via Err().
//
// Quick example:
//
//	ages := builder.NewMap[string, int]().
//		Put("A", 1).
//		Put("B", 2).
//		Put("A", 3).
//		Build()                      // {A:3 B:2}
//
//	go get github.com/katalvlaran/lvcollect
package lvcollect

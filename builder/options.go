// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Options only shape the default container allocated by NewList/NewMap/
//     NewSet. Containers supplied through ListOf/MapOf/SetOf are used as-is.

package builder

// Option customizes the default container allocated by a New* constructor.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithCapacity pre-sizes the default container for n elements.
// Ignored by the linked list and the sharded map, which do not pre-allocate.
// Panics if n < MinCapacity.
// Complexity: O(1) time, O(1) space.
func WithCapacity(n int) Option {
	if err := validateMin(MethodWithCapacity, n, MinCapacity); err != nil {
		panic("builder: " + err.Error())
	}
	return func(c *builderConfig) {
		c.capacity = n
	}
}

// WithLinkedList makes NewList allocate a collection.Linked sequence instead
// of a slice. Ignored by NewMap and NewSet.
func WithLinkedList() Option {
	return func(c *builderConfig) {
		c.linked = true
	}
}

// WithSharded makes NewMap allocate a collection.Sharded mapping instead of
// a plain hash map. Ignored by NewList and NewSet.
func WithSharded() Option {
	return func(c *builderConfig) {
		c.sharded = true
	}
}

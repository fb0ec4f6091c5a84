// Package builder defines the method name tokens used to prefix errors
// recorded by the builders.
package builder

const (
	// MethodListOf is the canonical name for the ListOf constructor.
	MethodListOf = "ListOf"
	// MethodMapOf is the canonical name for the MapOf constructor.
	MethodMapOf = "MapOf"
	// MethodSetOf is the canonical name for the SetOf constructor.
	MethodSetOf = "SetOf"
	// MethodWithCapacity is the canonical name for the WithCapacity option.
	MethodWithCapacity = "WithCapacity"
)

// MinCapacity is the smallest capacity hint accepted by WithCapacity.
const MinCapacity = 0

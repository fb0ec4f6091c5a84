// SPDX-License-Identifier: MIT
// Package: lvcollect/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • capacity = 0      (no pre-allocation)
//   • linked   = false  (slice-backed sequence)
//   • sharded  = false  (plain hash map)

package builder

// builderConfig aggregates all knobs used when allocating default containers.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	capacity int
	linked   bool
	sharded  bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier). Nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{capacity: MinCapacity}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return cfg
}

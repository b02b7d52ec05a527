// SPDX-License-Identifier: MIT
// Package: campusmap/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves must not panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the location label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-route seconds generator. The RNG passed in
// may be nil when no seed was configured. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformSeconds draws every route time uniformly from [lo, hi).
// Panics unless 0 ≤ lo < hi.
func WithUniformSeconds(lo, hi float64) BuilderOption {
	if !(lo >= 0 && lo < hi) {
		panic("builder: WithUniformSeconds requires 0 <= lo < hi")
	}
	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	})
}

// WithTwoWay emits every route in both directions with the same time.
func WithTwoWay() BuilderOption {
	return func(c *builderConfig) {
		c.twoWay = true
	}
}

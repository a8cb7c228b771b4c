// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// options.go - functional options resolved into builderConfig.
//
// Policy:
//   - Option constructors panic on meaningless input (nil functions/RNG).
//   - Constructors themselves never panic.

package builder

import (
	"math/rand"
)

// Option mutates builderConfig before any constructor runs.
type Option func(*builderConfig)

// WithIDScheme sets the index → VertexID mapping. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithFirstID numbers vertices first, first+1, first+2, ...
func WithFirstID(first uint64) Option {
	return WithIDScheme(OffsetIDFn(first))
}

// WithRand shares an existing RNG stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

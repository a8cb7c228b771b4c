// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// config.go - resolved knobs shared by all constructors of one Build call.
//
// Defaults (no option given):
//   • idFn     = DefaultIDFn       (index i → VertexID i)
//   • rng      = nil               (random constructors fail with ErrNeedRandSource)
//   • weightFn = DefaultWeightFn   (every edge weighs DefaultEdgeWeight)
//
// Options apply in order, so a later option overrides an earlier one.

package builder

import (
	"math/rand"
)

// builderConfig is handed to every constructor by value; the rng pointer is
// the only state shared between constructors of one Build.
type builderConfig struct {
	idFn     IDFn       // index → VertexID
	rng      *rand.Rand // nil: deterministic constructors only
	weightFn WeightFn   // one draw per emitted blueprint
}

// newBuilderConfig starts from the defaults and applies opts in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() uint64 {
	return c.weightFn(c.rng)
}

// addVertices adds idFn(0..n-1) to s.
func (c builderConfig) addVertices(s *Spec, n int) {
	for i := 0; i < n; i++ {
		s.AddVertex(c.idFn(i))
	}
}

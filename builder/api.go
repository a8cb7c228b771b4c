// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// api.go - public entry-point and factory index of the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates an empty Spec, resolves
//     cfg, runs cons in order.
//   - Constructors only add vertices and blueprints to the Spec; the immutable
//     core.Graph is produced once, at the end, by Spec.Graph.
//   - Determinism: same options/seed and constructor order ⇒ identical Specs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"
)

// Constructor adds a topology to s using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices through s.AddVertex (idempotent) before referencing them.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *Spec, cfg builderConfig) error

// Build resolves the builder configuration from opts and applies all
// constructors in order to a fresh Spec. Any constructor error is wrapped with
// the context "Build: %w" and returned immediately.
//
// Composition: constructors share the ID space of cfg.idFn, so Path(3)
// followed by Cycle(3) overlays both on the vertices 0,1,2.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*Spec, error) {
	cfg := newBuilderConfig(opts...)
	s := NewSpec()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)                 P_n, n ≥ 2.
// Cycle(n)                C_n, n ≥ 3.
// Star(n)                 center idFn(0) with n-1 leaves, n ≥ 2.
// Wheel(n)                C_{n-1} plus hub idFn(n-1), n ≥ 4.
// Complete(n)             K_n, n ≥ 1.
// CompleteBipartite(a,b)  K_{a,b}; left idFn(0..a-1), right idFn(a..a+b-1).
// Grid(rows, cols)        4-neighborhood lattice, row-major IDs.
// RandomSparse(n, p)      G(n,p); needs an RNG when 0 < p < 1.
// RandomRegular(n, d)     d-regular simple graph by stub matching; needs an RNG.
//
// Every factory emits blueprints in a stable, documented order and draws
// weights from cfg.weightFn(cfg.rng) once per blueprint.

// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Considers unordered pairs i < j, i ascending then j ascending; a pair
//     is kept when rng.Float64() < p. p == 0 keeps nothing and p == 1 keeps
//     every pair without consuming the RNG.
//   - The weight of a kept pair is drawn right after the decision, so the
//     RNG stream interleaves decisions and weights deterministically.
//
// Complexity:
//   - Time: O(n²) pair checks.

package builder

import (
	"fmt"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		// NaN fails both comparisons, hence the negated form.
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		cfg.addVertices(s, n)
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := s.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

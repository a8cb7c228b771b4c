// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center is idFn(0); leaves idFn(1..n-1).
//   - Emits center–leaf blueprints in increasing leaf order.

package builder

import (
	"fmt"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		cfg.addVertices(s, n)

		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := s.AddEdge(center, cfg.idFn(i), cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}

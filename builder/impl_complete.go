// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (K_1 is a single isolated vertex).
//   - Emits i–j for every i < j, i ascending then j ascending.
//
// Complexity:
//   - Time: O(n²) blueprints.

package builder

import (
	"fmt"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		cfg.addVertices(s, n)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := s.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}

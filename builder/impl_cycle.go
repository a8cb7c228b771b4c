// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i–(i+1) for i=0..n-2, then the closing (n-1)–0.

package builder

import (
	"fmt"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		cfg.addVertices(s, n)

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := s.AddEdge(u, v, cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}

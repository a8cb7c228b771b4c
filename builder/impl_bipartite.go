// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side idFn(0..n1-1), right side idFn(n1..n1+n2-1).
//   - Emits left×right blueprints, left index ascending then right ascending.

package builder

import (
	"fmt"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		cfg.addVertices(s, n1+n2)

		for i := 0; i < n1; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n2; j++ {
				if err := s.AddEdge(u, cfg.idFn(n1+j), cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) is idFn(r*cols + c) (row-major).
//   - For each cell in row-major order emits the right neighbor, then the
//     bottom neighbor, when they exist.
//
// Complexity:
//   - Time: O(rows*cols) vertices and blueprints.

package builder

import (
	"fmt"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cfg.addVertices(s, rows*cols)

		cell := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(cell(r, c))
				if c+1 < cols {
					if err := s.AddEdge(u, cfg.idFn(cell(r, c+1)), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := s.AddEdge(u, cfg.idFn(cell(r+1, c)), cfg.weight()); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (the rim C_{n-1} needs at least 3 vertices).
//   - Rim is Cycle(n-1) over idFn(0..n-2); hub is idFn(n-1).
//   - Emits the rim first, then hub–rim spokes in increasing rim order.

package builder

import (
	"fmt"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := cfg.idFn(n - 1)
		s.AddVertex(hub)
		for i := 0; i < n-1; i++ {
			if err := s.AddEdge(hub, cfg.idFn(i), cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}

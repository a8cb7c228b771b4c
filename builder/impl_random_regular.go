// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - Configuration model: n*d stubs are shuffled and paired; an attempt with
//     a self-loop or a repeated pair is discarded. After
//     maxStubMatchingAttempts failures ErrConstructFailed is returned.
//   - Blueprints are emitted in stub-pair order of the accepted attempt.
//
// Complexity:
//   - ~O(n*d) per attempt; attempts are bounded.

package builder

import (
	"fmt"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor that builds a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(s *Spec, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		cfg.addVertices(s, n)

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				if err := s.AddEdge(cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1]), cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs contain no self-loop
// and no repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}

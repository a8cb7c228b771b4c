// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is outside the allowed range for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not be completed,
// such as a nil constructor or exhausted stub-matching attempts.
var ErrConstructFailed = errors.New("builder: construction failed")

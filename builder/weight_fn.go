// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// weight_fn.go - edge weight generators.
//
// A WeightFn receives the config RNG, which is nil unless WithSeed/WithRand
// was given. Generators must stay deterministic for a fixed RNG stream and
// must tolerate a nil RNG.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no weight function is configured.
const DefaultEdgeWeight uint64 = 1

// WeightFn produces the weight of the next emitted blueprint.
type WeightFn func(rng *rand.Rand) uint64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) uint64 {
	return DefaultEdgeWeight
}

// ConstantWeight always returns value.
func ConstantWeight(value uint64) WeightFn {
	return func(_ *rand.Rand) uint64 {
		return value
	}
}

// UniformWeight draws uniformly from [min, max]. With a nil RNG it returns
// min. Panics if max < min.
func UniformWeight(min, max uint64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeight: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) uint64 {
		if rng == nil || max == min {
			return min
		}
		span := max - min
		switch {
		case span == math.MaxUint64:
			// span+1 wraps to 0; every 64-bit value is in range.
			return min + rng.Uint64()
		case span >= math.MaxInt64:
			// Int63n cannot express span+1.
			return min + rng.Uint64()%(span+1)
		}

		return min + uint64(rng.Int63n(int64(span)+1))
	}
}

// Package builder provides helper functions and types for configuring the
// distance and cost distributions of generated arcs.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the metric assigned to each arc when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces one arc metric from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or is not finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) || math.IsInf(value, 1) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || math.IsInf(max, 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < +Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Integral metrics keep sums exact, which makes
// generated fixtures convenient for equality assertions.
// Panics if min < 0 or max < min. With a nil rng it yields min.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn        ("0","1","2",...)
//   • rng        = nil                (pure unless seeded)
//   • distanceFn = DefaultWeightFn    (1 per arc)
//   • costFn     = DefaultWeightFn    (1 per arc)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn       func(int) string
	rng        *rand.Rand
	distanceFn WeightFn
	costFn     WeightFn
}

// newBuilderConfig applies opts in order over the defaults (later wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		distanceFn: DefaultWeightFn,
		costFn:     DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and weight
// functions. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceFn overrides the per-arc distance generator. Panics on nil.
func WithDistanceFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithCostFn overrides the per-arc cost generator. Panics on nil.
func WithCostFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithUniformMetrics draws distance from U[dMin,dMax) and cost from
// U[cMin,cMax). Requires an RNG (WithSeed) to be anything but constant.
func WithUniformMetrics(dMin, dMax, cMin, cMax float64) BuilderOption {
	dfn, cfn := UniformWeightFn(dMin, dMax), UniformWeightFn(cMin, cMax)
	return func(c *builderConfig) {
		c.distanceFn, c.costFn = dfn, cfn
	}
}

// WithIntegerMetrics draws integral distance in [dMin,dMax] and cost in
// [cMin,cMax].
func WithIntegerMetrics(dMin, dMax, cMin, cMax int) BuilderOption {
	dfn, cfn := IntegerWeightFn(dMin, dMax), IntegerWeightFn(cMin, cMax)
	return func(c *builderConfig) {
		c.distanceFn, c.costFn = dfn, cfn
	}
}

// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor adds nodes and arcs to g using the resolved builderConfig.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(g core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the configuration from bopts
// and applies all constructors in order. Constructors share the graph, so
// composing two of them over common IDs adds parallel arcs.
//
// Errors wrap the constructor's sentinel with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.Graph[string], error) {
	g := make(core.Graph[string])
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNode makes id a key of g (a sink until arcs are added).
func addNode(g core.Graph[string], id string) {
	if _, ok := g[id]; !ok {
		g[id] = []core.Edge[string]{}
	}
}

// addArc appends u→v with metrics drawn from cfg. Both endpoints become keys.
func addArc(g core.Graph[string], cfg builderConfig, u, v string) {
	addNode(g, v)
	g[u] = append(g[u], core.Edge[string]{
		To:       v,
		Distance: cfg.distanceFn(cfg.rng),
		Cost:     cfg.costFn(cfg.rng),
	})
}

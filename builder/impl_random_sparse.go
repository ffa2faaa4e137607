// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős-Rényi style digraph.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - Every ordered pair (i,j), i≠j, receives an arc independently with
//     probability p. Self-loops are never generated.
//   - p ∈ (0,1) requires an RNG (WithSeed or WithRand); p = 0 and p = 1 are
//     deterministic and need none.
//   - Trials run i asc, then j asc, so a fixed seed yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor for a random digraph on n nodes with
// arc probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			addNode(g, cfg.idFn(i))
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				addArc(g, cfg, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

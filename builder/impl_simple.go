// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_simple.go - Chain(n) and Complete(n).
//
// Determinism:
//   - Nodes are added in index order via cfg.idFn.
//   - Arc trials run i asc, then j asc; metrics are drawn in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodChain    = "Chain"
	methodComplete = "Complete"
	minChainNodes  = 2
	minCompleteN   = 1
)

// Chain returns a Constructor for the one-way chain 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			addNode(g, cfg.idFn(i))
		}
		for i := 0; i+1 < n; i++ {
			addArc(g, cfg, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Complete returns a Constructor for the complete digraph on n nodes: every
// ordered pair (i,j) with i≠j gets one arc (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			addNode(g, cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					addArc(g, cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

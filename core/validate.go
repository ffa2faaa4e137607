// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: structural validation of a Graph (dangling arcs, metrics, self-loops).
// Policy:
//   - Single pass over all edges, no allocations, no side effects.
//   - Validate reports the first violation met; IsValidGraph is its boolean form.

package core

import (
	"fmt"
	"math"
)

// IsValidGraph reports whether g satisfies every structural invariant:
// each edge's To is a key of g, each distance and cost is finite and
// non-negative, and no edge leads from a node to itself.
//
// The empty graph (and a nil graph) is valid.
//
// Complexity: O(V + E) time, O(1) space.
func IsValidGraph[N comparable](g Graph[N]) bool {
	return Validate(g) == nil
}

// Validate is IsValidGraph with a reason. It returns nil for a valid graph,
// otherwise an error wrapping ErrDanglingEdge, ErrBadMetric or ErrSelfLoop
// (all of which match ErrInvalidGraph) with the offending arc as context.
//
// Map iteration order is unspecified, so when several arcs are broken the one
// reported may differ between calls; the classification never does for a
// graph with a single violation.
//
// Complexity: O(V + E) time, O(1) space.
func Validate[N comparable](g Graph[N]) error {
	var (
		from  N
		edges []Edge[N]
		e     Edge[N]
		ok    bool
	)
	for from, edges = range g {
		for _, e = range edges {
			if e.To == from {
				return fmt.Errorf("%w: %v→%v", ErrSelfLoop, from, e.To)
			}
			if _, ok = g[e.To]; !ok {
				return fmt.Errorf("%w: %v→%v", ErrDanglingEdge, from, e.To)
			}
			if !validMetric(e.Distance) {
				return fmt.Errorf("%w: %v→%v distance=%g", ErrBadMetric, from, e.To, e.Distance)
			}
			if !validMetric(e.Cost) {
				return fmt.Errorf("%w: %v→%v cost=%g", ErrBadMetric, from, e.To, e.Cost)
			}
		}
	}

	return nil
}

// validMetric rejects negatives, NaN and both infinities.
func validMetric(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

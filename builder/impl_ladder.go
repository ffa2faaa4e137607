// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_ladder.go - Ladder(n): two parallel rails with free rungs.
//
// Layout (n = 4):
//
//	F0 → F1 → F2 → F3    fast rail: distance 1, cost 3 per step
//	↕    ↕    ↕    ↕     rungs:     distance 0, cost 0 (both ways)
//	S0 → S1 → S2 → S3    slow rail: distance 3, cost 1 per step
//
// Every F0→F(n-1) route takes n-1 rail steps; taking j of them on the fast
// rail costs 3j + (n-1-j) and runs j + 3(n-1-j). Under a budget B the best
// route therefore uses j = ⌊(B-(n-1))/2⌋ fast steps (capped at n-1), which
// gives tests and benchmarks a closed-form answer. Metric functions from the
// config are not used.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodLadder   = "Ladder"
	minLadderSteps = 2

	// LadderFastDistance and LadderFastCost are the metrics of a fast rail step.
	LadderFastDistance = 1
	LadderFastCost     = 3
	// LadderSlowDistance and LadderSlowCost are the metrics of a slow rail step.
	LadderSlowDistance = 3
	LadderSlowCost     = 1
)

// LadderFastID returns the ID of the i-th fast rail node.
func LadderFastID(i int) string { return "F" + strconv.Itoa(i) }

// LadderSlowID returns the ID of the i-th slow rail node.
func LadderSlowID(i int) string { return "S" + strconv.Itoa(i) }

// Ladder returns a Constructor for the two-rail ladder with n nodes per
// rail (n ≥ 2).
// Complexity: O(n).
func Ladder(n int) Constructor {
	return func(g core.Graph[string], _ builderConfig) error {
		if n < minLadderSteps {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minLadderSteps, ErrTooFewVertices)
		}
		var f, s string
		for i := 0; i < n; i++ {
			f, s = LadderFastID(i), LadderSlowID(i)
			addNode(g, f)
			addNode(g, s)
			g[f] = append(g[f], core.Edge[string]{To: s})
			g[s] = append(g[s], core.Edge[string]{To: f})
			if i+1 < n {
				g[f] = append(g[f], core.Edge[string]{To: LadderFastID(i + 1), Distance: LadderFastDistance, Cost: LadderFastCost})
				g[s] = append(g[s], core.Edge[string]{To: LadderSlowID(i + 1), Distance: LadderSlowDistance, Cost: LadderSlowCost})
			}
		}
		return nil
	}
}

// Package kpaths lists alternative routes: the k shortest cycle-free paths
// whose total cost fits a budget, on the two-metric graphs of package core.
//
// Overview:
//
//   - Result 0 is the budget-feasible optimum (rcsp.FindConstrainedPath).
//   - Result i+1 is found by deviating from result i at each of its nodes
//     (the spur node). The search runs from start with the prefix pinned by
//     node sequence, so any parallel arc along the prefix may be taken, and
//     the arcs accepted paths take out of the spur node are banned.
//   - Candidates wait in a cache sorted by (distance, cost, discovery) and are
//     de-duplicated by node sequence, so results are pairwise distinct.
//
// Guarantees:
//
//   - Results are ordered by non-decreasing distance, then cost.
//   - Every result is cycle-free and within maxCost (+ epsilon).
//   - Fewer than k results are returned when fewer exist; nothing is padded.
//   - Deterministic for a fixed graph (including its arc order).
//
// Resource caps:
//
//	WithMaxExpansions bounds the total work of all searches; WithMaxCandidates
//	bounds memory. Both may shorten the result list, never raise an error.
//	Stats.Truncated reports the former, Stats.Dropped the latter.
//
// API reference:
//
//	func FindKShortestPaths[N comparable](
//	    g core.Graph[N], start, end N, maxCost float64, k int, opts ...Option,
//	) ([]core.Path[N], error)
package kpaths

// Package rcsp finds budget-feasible shortest paths on two-metric graphs.
//
// Overview:
//
//   - Each arc has a distance (minimized) and a cost (bounded by maxCost).
//   - FindConstrainedPath returns the least-distance cycle-free path whose
//     total cost is ≤ maxCost, or nil when none exists.
//   - The general problem is NP-hard; the label-setting search used here is
//     exact and pseudo-polynomial in practice, and can be capped with
//     WithMaxExpansions for bounded latency.
//
// When to use:
//
//   - Route planning where the fastest route may be too expensive (tolls,
//     energy, hops, risk) and a hard ceiling applies.
//   - As the oracle for derived queries: k best paths (package kpaths) and
//     ordered waypoint routing (package waypoint).
//
// Dominance:
//
//	Label A dominates B at the same node when A.cost ≤ B.cost and
//	A.distance ≤ B.distance. A label equal to an existing one is discarded,
//	so the first discovered of two identical partial paths survives.
//
// Ordering and ties:
//
//	The frontier is a binary heap keyed by (distance, cost, discovery).
//	Among equally short feasible paths the cheaper wins; among fully tied
//	paths, the one discovered first wins. Discovery follows the order of the
//	arcs in each node's list, so results are reproducible run to run.
//
// Error handling (sentinel errors):
//
//   - core.ErrInvalidGraph (wrapped): the graph breaks a structural invariant.
//   - ErrNodeNotFound: start or end is not a node of the graph.
//   - ErrNegativeBudget: maxCost is negative or NaN.
//   - ErrOptionType: a node-typed option was built for another node type.
//
// Infeasibility is never an error: it is a nil path with a nil error.
//
// API reference:
//
//	func FindConstrainedPath[N comparable](
//	    g core.Graph[N], start, end N, maxCost float64, opts ...Option,
//	) (*core.Path[N], error)
//
//	func NewCostBounds[N comparable](g core.Graph[N], target N) *CostBounds[N]
//
// Thread safety:
//
//   - Every call allocates its own arena, heap and bounds; no state is shared
//     between calls. Concurrent calls on the same graph are safe as long as the
//     caller does not modify it meanwhile.
package rcsp

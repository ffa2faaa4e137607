// Package core provides the graph model used by every lvroute search: a
// directed adjacency map whose arcs carry two independent metrics.
//
//   - Distance is the quantity searches minimize.
//   - Cost is the quantity bounded by a caller-supplied budget.
//
// The model is deliberately a plain map so callers can build graphs with a
// literal and share them freely:
//
//	g := core.Graph[string]{
//	    "A": {{To: "B", Distance: 10, Cost: 5}},
//	    "B": {},
//	}
//
// Invariants (checked by Validate / IsValidGraph):
//
//   - every arc's To is a key of the map (sinks map to an empty list);
//   - distance and cost are finite and non-negative;
//   - no arc leads from a node to itself.
//
// Parallel arcs are allowed. Node identity is any comparable type, typically
// string or an integer type.
//
// Paths:
//
//	Path[N] records the visited node sequence, the arcs actually traversed and
//	their summed metrics. Path identity (Equal) is the node sequence.
//
// Concurrency:
//
//	Nothing in lvroute writes to a Graph it receives. Concurrent readers are
//	safe; concurrent writers must be synchronized by the caller.
//
// Errors:
//
//	ErrInvalidGraph  – umbrella for every structural violation
//	ErrDanglingEdge  – arc to a missing node
//	ErrBadMetric     – negative / NaN / infinite metric
//	ErrSelfLoop      – arc from a node to itself
//	ErrNoArc         – MeasurePath hop without an arc
package core

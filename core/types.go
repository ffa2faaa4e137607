// Package core defines the two-metric Graph, Edge and Path types shared by
// every search package, together with structural validation.
//
// This file declares Edge, Graph, Path and the sentinel errors.
//
// Errors:
//
//	ErrInvalidGraph - umbrella sentinel matched by every structural violation.
//	ErrDanglingEdge - an edge points to a node that is not a key of the graph.
//	ErrBadMetric    - an edge carries a negative, NaN or infinite metric.
//	ErrSelfLoop     - an edge leads from a node back to itself.
//	ErrNoArc        - a node sequence uses a hop the graph has no arc for.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph validation and path measurement.
var (
	// ErrInvalidGraph indicates the graph breaks a structural invariant.
	// Every more specific validation error below also matches it.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrDanglingEdge indicates an edge whose To is not a key of the graph.
	ErrDanglingEdge = fmt.Errorf("%w: dangling edge", ErrInvalidGraph)

	// ErrBadMetric indicates a negative, NaN or infinite distance or cost.
	ErrBadMetric = fmt.Errorf("%w: metric must be finite and non-negative", ErrInvalidGraph)

	// ErrSelfLoop indicates an edge with from == to.
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrInvalidGraph)

	// ErrNoArc indicates a node sequence contains a hop u→v with no arc in the graph.
	ErrNoArc = errors.New("core: no arc between consecutive nodes")
)

// Edge is a directed arc leaving the node under which it is stored.
//
// The source node is implicit: it is the Graph key holding the edge.
type Edge[N comparable] struct {
	// To is the destination node. It must be a key of the Graph.
	To N `json:"to" yaml:"to"`

	// Distance is the metric every search minimizes.
	Distance float64 `json:"distance" yaml:"distance"`

	// Cost is the metric bounded by the caller's budget.
	Cost float64 `json:"cost" yaml:"cost"`
}

// Graph maps every node to the ordered list of its outgoing edges.
//
// Every To referenced by an edge must exist as a key; sink nodes hold an
// empty (or nil) list. Edge order is significant only for tie-breaking:
// searches discover arcs in list order.
//
// No function in this module mutates a Graph it is given, so a Graph may be
// shared by concurrent queries as long as the caller does not write to it.
type Graph[N comparable] map[N][]Edge[N]

// Path is one route through a Graph.
//
// Nodes[0] is the start and Nodes[len-1] the end. Edges[i] is the arc
// traversed from Nodes[i] to Nodes[i+1], so len(Edges) == len(Nodes)-1.
// TotalDistance and TotalCost are the sums over Edges.
type Path[N comparable] struct {
	Nodes         []N       `json:"path"`
	Edges         []Edge[N] `json:"-"`
	TotalDistance float64   `json:"totalDistance"`
	TotalCost     float64   `json:"totalCost"`
}

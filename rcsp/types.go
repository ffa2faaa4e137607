// Package rcsp defines the options, statistics and sentinel errors of the
// resource-constrained shortest-path engine.
//
// Options follow the functional style of the lvroute search packages:
// scalar settings are plain values, node-typed settings (exclusions, bounds,
// hooks) infer their node type from their arguments and are checked against
// the graph's node type when the search starts.
//
// Options:
//
//	– WithMaxExpansions(n): stop after n label expansions (0 = unlimited).
//	– WithEpsilon(eps):     absolute tolerance when comparing cost to the budget.
//	– WithExcludedNodes:    nodes the path must not enter.
//	– WithExcludedArcs:     (from,to) pairs the path must not traverse.
//	– WithCostBounds(b):    reuse lower bounds computed by NewCostBounds.
//	– WithSkipValidation(): trust the graph (caller already validated it).
//	– WithStats(&s):        receive search counters.
//	– WithOnExpand(fn):     observe every expanded label.
//
// Errors (sentinel):
//
//	– ErrNodeNotFound   if start or end is not a key of the graph.
//	– ErrNegativeBudget if maxCost is negative or NaN.
//	– ErrOptionType     if a node-typed option does not match the graph's node type.
//	– ErrBadMaxExpansions, ErrBadEpsilon (via panic) for nonsensical option values.
package rcsp

import (
	"errors"
	"math"
)

// Sentinel errors returned by FindConstrainedPath.
var (
	// ErrNodeNotFound indicates that start or end is not a key of the graph.
	ErrNodeNotFound = errors.New("rcsp: node not found in graph")

	// ErrNegativeBudget indicates a negative or NaN maxCost.
	ErrNegativeBudget = errors.New("rcsp: budget must be a non-negative number")

	// ErrOptionType indicates a node-typed option built for another node type.
	ErrOptionType = errors.New("rcsp: option node type does not match graph")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("rcsp: MaxExpansions must be non-negative")

	// ErrBadEpsilon indicates a negative, NaN or infinite tolerance.
	ErrBadEpsilon = errors.New("rcsp: Epsilon must be finite and non-negative")
)

// DefaultEpsilon is the default absolute tolerance used when a path's cost is
// compared against the budget. It absorbs float rounding in accumulated sums
// (0.1+0.2 against a budget of 0.3).
const DefaultEpsilon = 1e-9

// boundSlack is the relative tolerance applied when a label's cost plus its
// lower bound is compared with the budget.
const boundSlack = 1e-12

// Arc names a directed hop by its endpoints. All parallel arcs between the
// same endpoints are covered by one Arc.
type Arc[N comparable] struct {
	From N
	To   N
}

// Stats collects counters from one search. Pass a pointer with WithStats;
// the search overwrites it.
type Stats struct {
	// Expansions counts labels popped from the queue and expanded.
	Expansions int
	// Labels counts labels accepted into a node frontier (the root included).
	Labels int
	// Dominated counts labels rejected or evicted by dominance.
	Dominated int
	// Pruned counts successors discarded by the budget or the cost bound.
	Pruned int
	// Truncated is set when MaxExpansions stopped the search early.
	Truncated bool
}

// Options configures FindConstrainedPath.
//
// MaxExpansions  – 0 means unlimited. Reaching the cap returns a nil path.
// Epsilon        – feasibility test is cost ≤ maxCost + Epsilon.
// SkipValidation – skip the O(V+E) structural check of the graph.
// Stats          – if non-nil, receives the search counters.
type Options struct {
	MaxExpansions  int
	Epsilon        float64
	SkipValidation bool
	Stats          *Stats

	// node-typed settings, boxed; see resolve in rcsp.go
	excludedNodes any // map[N]struct{}
	excludedArcs  any // map[Arc[N]]struct{}
	bounds        any // *CostBounds[N]
	onExpand      any // func(N, float64, float64)
	fixedNext     any // map[N]N
}

// Option represents a functional option for configuring FindConstrainedPath.
type Option func(*Options)

// DefaultOptions returns the defaults: no expansion cap, DefaultEpsilon,
// validation on, no exclusions, bounds computed per search.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Epsilon:       DefaultEpsilon,
	}
}

// WithMaxExpansions caps the number of label expansions. Zero disables the cap.
// Panics on a negative value.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithEpsilon sets the absolute budget tolerance. Panics on a negative, NaN
// or infinite value.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 1) {
		panic(ErrBadEpsilon.Error())
	}

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithSkipValidation tells the search the graph has already been validated.
func WithSkipValidation() Option {
	return func(o *Options) {
		o.SkipValidation = true
	}
}

// WithStats makes the search report its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithExcludedNodes forbids the path from entering any of nodes. The start
// node itself is never filtered. Repeated use accumulates.
func WithExcludedNodes[N comparable](nodes ...N) Option {
	return func(o *Options) {
		set, ok := o.excludedNodes.(map[N]struct{})
		if !ok {
			set = make(map[N]struct{}, len(nodes))
		}
		for _, n := range nodes {
			set[n] = struct{}{}
		}
		o.excludedNodes = set
	}
}

// WithExcludedArcs forbids every arc between the given endpoints.
// Repeated use accumulates.
func WithExcludedArcs[N comparable](arcs ...Arc[N]) Option {
	return func(o *Options) {
		set, ok := o.excludedArcs.(map[Arc[N]]struct{})
		if !ok {
			set = make(map[Arc[N]]struct{}, len(arcs))
		}
		for _, a := range arcs {
			set[a] = struct{}{}
		}
		o.excludedArcs = set
	}
}

// WithFixedPrefix pins the first hops of the path to the node sequence
// prefix, which should begin at start. Between consecutive prefix nodes any
// parallel arc may be taken; past the last prefix node the search is free.
// A later use replaces an earlier one.
func WithFixedPrefix[N comparable](prefix ...N) Option {
	return func(o *Options) {
		next := make(map[N]N, len(prefix))
		for i := 0; i+1 < len(prefix); i++ {
			next[prefix[i]] = prefix[i+1]
		}
		o.fixedNext = next
	}
}

// WithCostBounds reuses lower bounds built by NewCostBounds. Bounds built for
// a target other than the search's end are ignored and recomputed.
func WithCostBounds[N comparable](b *CostBounds[N]) Option {
	return func(o *Options) {
		if b != nil {
			o.bounds = b
		}
	}
}

// WithOnExpand registers a callback invoked for every expanded label with the
// label's node and its accumulated distance and cost.
func WithOnExpand[N comparable](fn func(node N, distance, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}

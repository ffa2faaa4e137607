// Package waypoint routes through an ordered list of intermediate nodes
// under one overall cost budget.
//
// The route is split into legs start→w0, w0→w1, …, wLast→end. Legs are
// solved in order with rcsp.FindConstrainedPath; each leg may spend what the
// earlier legs left of the budget. The split is greedy: every leg takes its
// own shortest feasible path, which can leave too little budget for later
// legs even when a slower, cheaper earlier leg would have made the whole
// route feasible.
//
// Legs are concatenated with the junction node kept once. Each leg is
// cycle-free; the full route may visit a node in more than one leg.
package waypoint

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/rcsp"
)

// FindPathWithWaypoints returns the route start → waypoints... → end built
// from per-leg constrained shortest paths, or nil when some leg has no path
// within the budget that remains for it.
//
// Validation (in order): graph structure, start, each waypoint, end
// (rcsp.ErrNodeNotFound), maxCost (rcsp.ErrNegativeBudget). An empty
// waypoint list is a single start→end search. g and waypoints are never
// modified.
func FindPathWithWaypoints[N comparable](g core.Graph[N], start N, waypoints []N, end N, maxCost float64, opts ...Option) (*core.Path[N], error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("waypoint: %w", err)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %v", rcsp.ErrNodeNotFound, start)
	}
	for i, w := range waypoints {
		if !g.HasNode(w) {
			return nil, fmt.Errorf("%w: waypoint %d (%v)", rcsp.ErrNodeNotFound, i, w)
		}
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %v", rcsp.ErrNodeNotFound, end)
	}
	if !(maxCost >= 0) {
		return nil, fmt.Errorf("%w: got %g", rcsp.ErrNegativeBudget, maxCost)
	}

	var st Stats
	route, err := walk(g, legStops(start, waypoints, end), maxCost, cfg, &st)
	if cfg.Stats != nil {
		*cfg.Stats = st
	}

	return route, err
}

// legStops returns start, waypoints..., end as one slice.
func legStops[N comparable](start N, waypoints []N, end N) []N {
	stops := make([]N, 0, len(waypoints)+2)
	stops = append(stops, start)
	stops = append(stops, waypoints...)

	return append(stops, end)
}

// walk solves the legs between consecutive stops and joins them.
func walk[N comparable](g core.Graph[N], stops []N, maxCost float64, cfg Options, st *Stats) (*core.Path[N], error) {
	var (
		route     = core.TrivialPath(stops[0])
		remaining = maxCost
		leg       *core.Path[N]
		ls        rcsp.Stats
		err       error
	)
	for i := 1; i < len(stops); i++ {
		opts := []rcsp.Option{
			rcsp.WithSkipValidation(),
			rcsp.WithEpsilon(cfg.Epsilon),
			rcsp.WithStats(&ls),
		}
		if cfg.MaxExpansions > 0 {
			left := cfg.MaxExpansions - st.Expansions
			if left <= 0 {
				st.Truncated = true
				return nil, nil
			}
			opts = append(opts, rcsp.WithMaxExpansions(left))
		}

		leg, err = rcsp.FindConstrainedPath(g, stops[i-1], stops[i], remaining, opts...)
		if err != nil {
			return nil, fmt.Errorf("waypoint: leg %d: %w", i-1, err)
		}
		st.Expansions += ls.Expansions
		if leg == nil {
			st.Truncated = ls.Truncated
			st.Segments = append(st.Segments, SegmentStats{Expansions: ls.Expansions})
			return nil, nil
		}
		st.Segments = append(st.Segments, SegmentStats{
			Distance:   leg.TotalDistance,
			Cost:       leg.TotalCost,
			Expansions: ls.Expansions,
		})

		route = route.Append(leg)
		// epsilon may let a leg overshoot by a rounding error
		remaining = max(remaining-leg.TotalCost, 0)
	}

	return route, nil
}

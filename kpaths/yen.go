// Package kpaths enumerates the k shortest budget-feasible paths between two
// nodes, in the manner of Yen's algorithm, with rcsp.FindConstrainedPath as
// the single-path oracle.
//
// Complexity:
//
//   - Searches: at most 1 + (k-1)·P constrained searches, P = longest result
//     path in arcs. Every search runs from start with its root pinned.
//   - Candidate cache: O(k) paths after trimming, each insertion O(k + P).
package kpaths

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/rcsp"
)

// FindKShortestPaths returns up to k distinct cycle-free paths from start to
// end whose total cost is at most maxCost, ordered by distance, then cost,
// then discovery. The first path equals rcsp.FindConstrainedPath's answer.
//
// Returns:
//
//   - (paths, nil): 0 ≤ len(paths) ≤ k. Fewer than k results means fewer
//     feasible paths exist, or a cap (see Options) stopped the enumeration.
//     The slice is never nil on success.
//   - (nil, err): invalid input, checked in the same order as rcsp, with k
//     checked last (ErrNegativeK).
//
// Two paths are distinct when their node sequences differ; parallel arcs do
// not produce additional results. g is never modified.
func FindKShortestPaths[N comparable](g core.Graph[N], start, end N, maxCost float64, k int, opts ...Option) ([]core.Path[N], error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("kpaths: %w", err)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %v", rcsp.ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %v", rcsp.ErrNodeNotFound, end)
	}
	if !(maxCost >= 0) {
		return nil, fmt.Errorf("%w: got %g", rcsp.ErrNegativeBudget, maxCost)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeK, k)
	}

	e := &enumerator[N]{
		g:      g,
		end:    end,
		cfg:    cfg,
		bounds: rcsp.NewCostBounds(g, end),
		seen:   newSeenSet[N](),
	}
	results, err := e.run(start, maxCost, k)
	if cfg.Stats != nil {
		*cfg.Stats = e.stats
	}
	if err != nil {
		return nil, err
	}

	return results, nil
}

// enumerator holds the state of one FindKShortestPaths call.
type enumerator[N comparable] struct {
	g      core.Graph[N]
	end    N
	cfg    Options
	bounds *rcsp.CostBounds[N]
	seen   *seenSet[N]
	cache  candidateCache[N]
	stats  Stats
}

// run produces the ordered results.
//
// Each deviation search starts over from start with the root pinned by node
// sequence only; the arcs along the root are chosen together with the spur.
func (e *enumerator[N]) run(start N, maxCost float64, k int) ([]core.Path[N], error) {
	results := make([]core.Path[N], 0, min(k, 16))
	if k == 0 {
		return results, nil
	}

	first, ok, err := e.search(start, maxCost, nil, nil)
	if err != nil || !ok || first == nil {
		return results, err
	}
	e.seen.add(first.Nodes)
	results = append(results, *first)

	var (
		last *core.Path[N]
		root []N
		cand *core.Path[N]
	)
	for len(results) < k {
		last = &results[len(results)-1]

		// Deviate from last at every node but the end.
		for i := 0; i < last.Len(); i++ {
			root = last.Nodes[:i+1]
			cand, ok, err = e.search(start, maxCost, root, usedArcs(results, root))
			if err != nil || !ok {
				return results, err
			}
			if cand == nil || !e.seen.add(cand.Nodes) {
				continue
			}
			e.stats.Candidates++
			e.cache.push(cand)
		}

		// Candidates ranked beyond the results still needed can never be
		// returned; the optional cap applies after that.
		e.cache.trim(k - len(results))
		if e.cfg.MaxCandidates > 0 {
			e.stats.Dropped += e.cache.trim(e.cfg.MaxCandidates)
		}
		if e.cache.Len() == 0 {
			break
		}
		results = append(results, *e.cache.pop())
	}

	return results, nil
}

// search runs one constrained search from start to the target whose path
// begins with root and leaves root's last node by none of arcs. It returns
// ok=false once the shared expansion budget is spent, which ends the
// enumeration.
func (e *enumerator[N]) search(start N, budget float64, root []N, arcs []rcsp.Arc[N]) (*core.Path[N], bool, error) {
	var st rcsp.Stats
	opts := []rcsp.Option{
		rcsp.WithSkipValidation(),
		rcsp.WithEpsilon(e.cfg.Epsilon),
		rcsp.WithCostBounds(e.bounds),
		rcsp.WithStats(&st),
	}
	if len(root) > 1 {
		opts = append(opts, rcsp.WithFixedPrefix(root...))
	}
	if len(arcs) > 0 {
		opts = append(opts, rcsp.WithExcludedArcs(arcs...))
	}
	if e.cfg.MaxExpansions > 0 {
		left := e.cfg.MaxExpansions - e.stats.Expansions
		if left <= 0 {
			e.stats.Truncated = true
			return nil, false, nil
		}
		opts = append(opts, rcsp.WithMaxExpansions(left))
	}

	p, err := rcsp.FindConstrainedPath(e.g, start, e.end, budget, opts...)
	if err != nil {
		return nil, false, fmt.Errorf("kpaths: %w", err)
	}
	e.stats.Searches++
	e.stats.Expansions += st.Expansions
	if st.Truncated {
		e.stats.Truncated = true
		return nil, false, nil
	}

	return p, true, nil
}

// usedArcs lists, for every accepted path that starts with prefix, the arc
// leaving the prefix's last node. A deviation search must avoid them all so
// it cannot rebuild an accepted path.
func usedArcs[N comparable](accepted []core.Path[N], prefix []N) []rcsp.Arc[N] {
	i := len(prefix) - 1
	var arcs []rcsp.Arc[N]
	for j := range accepted {
		p := &accepted[j]
		if len(p.Nodes) > i+1 && p.HasPrefix(prefix) {
			arcs = append(arcs, rcsp.Arc[N]{From: p.Nodes[i], To: p.Nodes[i+1]})
		}
	}

	return arcs
}

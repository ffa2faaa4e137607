// Package rcsp implements a resource-constrained shortest-path search: find
// the cycle-free path of least total distance whose total cost stays within
// a budget, on a graph whose arcs carry both metrics.
//
// The search is multi-criteria label setting. Every node keeps the set of
// non-dominated (cost, distance) labels that reach it; labels are expanded in
// non-decreasing distance from a min-heap, so the first label popped at the
// end node is optimal.
//
// Complexity:
//
//   - Time:  pseudo-polynomial; O(L·(d + log L)) for L created labels and
//     maximum out-degree d, plus O(L·P) for the cycle checks (P = path length).
//     L is bounded by Σ over nodes of the non-dominated labels per node.
//   - Space: O(L + V + E) (arena, heap, cost bounds).
//
// Notes on implementation choices:
//
//   - Labels that cannot finish within budget are never created: a reverse
//     Dijkstra on cost gives each node's least cost-to-target, and a label is
//     kept only if cost + bound ≤ budget.
//   - Dominated labels are removed lazily ("dead" flag) instead of being
//     deleted from the heap.
//   - An expansion cap turns the search into a bounded one; hitting it is an
//     expected outcome reported as a nil path, not an error.
package rcsp

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// FindConstrainedPath returns the cycle-free path from start to end with the
// least total distance among those whose total cost is at most maxCost.
// Ties on distance go to the lower cost, then to the path discovered first.
//
// Returns:
//
//   - (*core.Path, nil): the optimal path. start == end yields the single-node
//     path with zero distance and zero cost.
//   - (nil, nil): no path fits the budget, end is unreachable, or
//     MaxExpansions stopped the search (see Stats.Truncated).
//   - (nil, err): invalid input.
//
// Preconditions and validation (in order):
//  1. g must be structurally valid (core.Validate), unless WithSkipValidation.
//  2. start must be a key of g (ErrNodeNotFound).
//  3. end must be a key of g (ErrNodeNotFound).
//  4. maxCost must be ≥ 0 and not NaN (ErrNegativeBudget); +Inf is unconstrained.
//  5. node-typed options must match N (ErrOptionType).
//
// g is never modified.
func FindConstrainedPath[N comparable](g core.Graph[N], start, end N, maxCost float64, opts ...Option) (*core.Path[N], error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if !cfg.SkipValidation {
		if err := core.Validate(g); err != nil {
			return nil, fmt.Errorf("rcsp: %w", err)
		}
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %v", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %v", ErrNodeNotFound, end)
	}
	if !(maxCost >= 0) {
		return nil, fmt.Errorf("%w: got %g", ErrNegativeBudget, maxCost)
	}
	typed, err := resolve[N](cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
	}

	// 3) A zero-length path needs no budget
	if start == end {
		if cfg.Stats != nil {
			cfg.Stats.Labels = 1
		}
		return core.TrivialPath(start), nil
	}

	// 4) Bounds: reuse the caller's when they target the same node
	if typed.bounds == nil || typed.bounds.target != end {
		typed.bounds = NewCostBounds(g, end)
	}

	limit := maxCost + cfg.Epsilon
	s := &searcher[N]{
		g:          g,
		end:        end,
		limit:      limit,
		boundLimit: limit * (1 + boundSlack),
		cfg:        cfg,
		typed:      typed,
		arena:      newArena[N](len(g)),
		pq:         make(labelPQ, 0, len(g)),
	}
	p := s.run(start)
	if cfg.Stats != nil {
		*cfg.Stats = s.stats
	}

	return p, nil
}

// typedOptions holds the node-typed settings unboxed for N.
type typedOptions[N comparable] struct {
	excludedNodes map[N]struct{}
	excludedArcs  map[Arc[N]]struct{}
	bounds        *CostBounds[N]
	onExpand      func(N, float64, float64)
	fixedNext     map[N]N
}

// resolve unboxes the node-typed options, failing with ErrOptionType when one
// was built for a different node type.
func resolve[N comparable](cfg Options) (typedOptions[N], error) {
	var t typedOptions[N]
	var ok bool
	if cfg.excludedNodes != nil {
		if t.excludedNodes, ok = cfg.excludedNodes.(map[N]struct{}); !ok {
			return t, fmt.Errorf("%w: WithExcludedNodes", ErrOptionType)
		}
	}
	if cfg.excludedArcs != nil {
		if t.excludedArcs, ok = cfg.excludedArcs.(map[Arc[N]]struct{}); !ok {
			return t, fmt.Errorf("%w: WithExcludedArcs", ErrOptionType)
		}
	}
	if cfg.bounds != nil {
		if t.bounds, ok = cfg.bounds.(*CostBounds[N]); !ok {
			return t, fmt.Errorf("%w: WithCostBounds", ErrOptionType)
		}
	}
	if cfg.onExpand != nil {
		if t.onExpand, ok = cfg.onExpand.(func(N, float64, float64)); !ok {
			return t, fmt.Errorf("%w: WithOnExpand", ErrOptionType)
		}
	}
	if cfg.fixedNext != nil {
		if t.fixedNext, ok = cfg.fixedNext.(map[N]N); !ok {
			return t, fmt.Errorf("%w: WithFixedPrefix", ErrOptionType)
		}
	}

	return t, nil
}

// searcher holds the mutable state of one FindConstrainedPath call.
type searcher[N comparable] struct {
	g     core.Graph[N] // read-only input
	end   N
	limit float64 // maxCost + Epsilon
	cfg   Options
	typed typedOptions[N]
	arena *arena[N]
	pq    labelPQ
	stats Stats

	// Cost bounds are summed in reverse arc order and may exceed the forward
	// sum of the same costs by a rounding error, so cost+bound is tested
	// against limit with a small relative slack.
	boundLimit float64
}

// run seeds the root label and expands labels in distance order until a
// label at end is popped, the heap drains, or the expansion cap is reached.
func (s *searcher[N]) run(start N) *core.Path[N] {
	if s.typed.bounds.MinCost(start) > s.boundLimit {
		// even the cheapest route to end overshoots the budget
		s.stats.Pruned++
		return nil
	}

	root, _, _ := s.arena.insert(label[N]{node: start, pred: noPred})
	s.stats.Labels++
	heap.Push(&s.pq, queueItem{handle: root})

	var (
		item queueItem
		cur  label[N]
	)
	for s.pq.Len() > 0 {
		item = heap.Pop(&s.pq).(queueItem)
		cur = s.arena.labels[item.handle]
		if cur.dead {
			continue
		}
		if cur.node == s.end {
			return s.arena.path(item.handle)
		}
		if s.cfg.MaxExpansions > 0 && s.stats.Expansions >= s.cfg.MaxExpansions {
			s.stats.Truncated = true
			return nil
		}
		s.stats.Expansions++
		if s.typed.onExpand != nil {
			s.typed.onExpand(cur.node, cur.dist, cur.cost)
		}
		s.expand(item.handle, cur)
	}

	return nil
}

// expand generates the successors of label h (a copy of which is cur).
func (s *searcher[N]) expand(h int, cur label[N]) {
	var (
		e      core.Edge[N]
		cost   float64
		bound  float64
		next   N
		pinned bool
		ok     bool
	)
	next, pinned = s.typed.fixedNext[cur.node]
	for _, e = range s.g[cur.node] {
		if pinned && e.To != next {
			continue
		}
		if s.typed.excludedArcs != nil {
			if _, ok = s.typed.excludedArcs[Arc[N]{From: cur.node, To: e.To}]; ok {
				continue
			}
		}
		if s.typed.excludedNodes != nil {
			if _, ok = s.typed.excludedNodes[e.To]; ok {
				continue
			}
		}

		// Budget feasibility, including the least cost still needed.
		cost = cur.cost + e.Cost
		bound = s.typed.bounds.MinCost(e.To)
		if cost > s.limit || math.IsInf(bound, 1) || cost+bound > s.boundLimit {
			s.stats.Pruned++
			continue
		}

		// Paths stay simple: never step back onto our own chain.
		if s.arena.onChain(h, e.To) {
			continue
		}

		child, accepted, evicted := s.arena.insert(label[N]{
			node: e.To,
			dist: cur.dist + e.Distance,
			cost: cost,
			pred: h,
			edge: e,
		})
		s.stats.Dominated += evicted
		if !accepted {
			s.stats.Dominated++
			continue
		}
		s.stats.Labels++
		heap.Push(&s.pq, queueItem{handle: child, dist: cur.dist + e.Distance, cost: cost})
	}
}

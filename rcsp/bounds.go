package rcsp

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// CostBounds holds, for one target node, the least cost any path needs from
// each node to reach the target, ignoring budget and distance. Nodes that
// cannot reach the target at all have no entry.
//
// A CostBounds is immutable once built and may be shared by concurrent
// searches that target the same node.
type CostBounds[N comparable] struct {
	target  N
	minCost map[N]float64
}

// NewCostBounds runs Dijkstra over the cost metric on the transpose of g,
// starting at target. The graph must be valid; g is not modified.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func NewCostBounds[N comparable](g core.Graph[N], target N) *CostBounds[N] {
	rev := g.Reverse()
	b := &CostBounds[N]{
		target:  target,
		minCost: make(map[N]float64, len(g)),
	}
	if _, ok := rev[target]; !ok {
		return b
	}

	visited := make(map[N]bool, len(rev))
	pq := make(costPQ[N], 0, len(rev))
	b.minCost[target] = 0
	heap.Push(&pq, costItem[N]{node: target, cost: 0})

	var (
		item costItem[N]
		e    core.Edge[N]
		nc   float64
		cur  float64
		ok   bool
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(costItem[N])
		// skip stale heap entries (lazy decrease-key)
		if visited[item.node] {
			continue
		}
		visited[item.node] = true

		for _, e = range rev[item.node] {
			nc = item.cost + e.Cost
			cur, ok = b.minCost[e.To]
			if ok && nc >= cur {
				continue
			}
			b.minCost[e.To] = nc
			heap.Push(&pq, costItem[N]{node: e.To, cost: nc})
		}
	}

	return b
}

// Target returns the node the bounds were computed for.
func (b *CostBounds[N]) Target() N {
	return b.target
}

// MinCost returns the least cost from n to the target, or +Inf when the
// target is unreachable from n.
func (b *CostBounds[N]) MinCost(n N) float64 {
	if c, ok := b.minCost[n]; ok {
		return c
	}

	return math.Inf(1)
}

// costItem is a (node, cost) pair in the bounds heap.
type costItem[N comparable] struct {
	node N
	cost float64
}

// costPQ is a min-heap of costItem ordered by cost.
type costPQ[N comparable] []costItem[N]

func (pq costPQ[N]) Len() int            { return len(pq) }
func (pq costPQ[N]) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq costPQ[N]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *costPQ[N]) Push(x interface{}) { *pq = append(*pq, x.(costItem[N])) }
func (pq *costPQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package rcsp

import "github.com/katalvlaran/lvroute/core"

// noPred marks the root label of a search.
const noPred = -1

// label is one partial path reaching node. Labels live in an arena and are
// referred to by handle (their index), which doubles as the discovery order.
type label[N comparable] struct {
	node N
	dist float64
	cost float64
	pred int          // handle of the predecessor label, noPred for the root
	edge core.Edge[N] // arc used to reach node from pred
	dead bool         // evicted by a dominating label; skipped when popped
}

// arena owns every label of one search together with the per-node
// non-dominated frontiers.
type arena[N comparable] struct {
	labels   []label[N]
	frontier map[N][]int
}

func newArena[N comparable](hint int) *arena[N] {
	return &arena[N]{
		labels:   make([]label[N], 0, hint),
		frontier: make(map[N][]int, hint),
	}
}

// insert adds l to its node's frontier unless an existing label is at least
// as good in both metrics. Labels that l dominates are marked dead and
// dropped from the frontier. It returns the new handle, whether l was
// accepted, and how many labels l evicted.
//
// Complexity: O(labels at l.node).
func (a *arena[N]) insert(l label[N]) (int, bool, int) {
	bucket := a.frontier[l.node]
	var h int
	for _, h = range bucket {
		o := &a.labels[h]
		if o.cost <= l.cost && o.dist <= l.dist {
			// equal labels lose too: the first discovered one is kept
			return noPred, false, 0
		}
	}

	evicted := 0
	keep := bucket[:0]
	for _, h = range bucket {
		o := &a.labels[h]
		if l.cost <= o.cost && l.dist <= o.dist {
			o.dead = true
			evicted++
			continue
		}
		keep = append(keep, h)
	}

	a.labels = append(a.labels, l)
	h = len(a.labels) - 1
	a.frontier[l.node] = append(keep, h)

	return h, true, evicted
}

// onChain reports whether n already appears on the predecessor chain of
// handle h (h itself included).
//
// Complexity: O(path length).
func (a *arena[N]) onChain(h int, n N) bool {
	for ; h != noPred; h = a.labels[h].pred {
		if a.labels[h].node == n {
			return true
		}
	}

	return false
}

// path rebuilds the core.Path ending at handle h.
func (a *arena[N]) path(h int) *core.Path[N] {
	var edges []core.Edge[N]
	root := h
	for ; a.labels[root].pred != noPred; root = a.labels[root].pred {
		edges = append(edges, a.labels[root].edge)
	}
	// reverse to get start → end
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	p := core.TrivialPath(a.labels[root].node)
	for _, e := range edges {
		p.Nodes = append(p.Nodes, e.To)
		p.Edges = append(p.Edges, e)
		p.TotalDistance += e.Distance
		p.TotalCost += e.Cost
	}

	return p
}

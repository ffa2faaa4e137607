package core

import "fmt"

// HasNode reports whether id is a key of g.
// Complexity: O(1).
func (g Graph[N]) HasNode(id N) bool {
	_, ok := g[id]

	return ok
}

// NodeCount returns the number of nodes (keys) in g.
// Complexity: O(1).
func (g Graph[N]) NodeCount() int {
	return len(g)
}

// EdgeCount returns the total number of arcs in g, parallel arcs included.
// Complexity: O(V).
func (g Graph[N]) EdgeCount() int {
	total := 0
	for _, edges := range g {
		total += len(edges)
	}

	return total
}

// Reverse returns the transpose of g: for every arc u→v it holds an arc
// v→u with the same metrics. Every node of g is a key of the result, so the
// transpose of a valid graph is valid. g itself is not touched.
//
// Arcs in each reversed list follow the iteration order of g, which Go leaves
// unspecified; callers must only rely on the arc set, not its order.
//
// Complexity: O(V + E) time and space.
func (g Graph[N]) Reverse() Graph[N] {
	rev := make(Graph[N], len(g))
	for from := range g {
		if _, ok := rev[from]; !ok {
			rev[from] = nil
		}
	}
	for from, edges := range g {
		for _, e := range edges {
			rev[e.To] = append(rev[e.To], Edge[N]{To: from, Distance: e.Distance, Cost: e.Cost})
		}
	}

	return rev
}

// preferredArc returns the arc from→to preferred by MeasurePath: the lowest
// distance, then the lowest cost, then the first listed.
func (g Graph[N]) preferredArc(from, to N) (Edge[N], bool) {
	var (
		best  Edge[N]
		found bool
	)
	for _, e := range g[from] {
		if e.To != to {
			continue
		}
		if !found || e.Distance < best.Distance || (e.Distance == best.Distance && e.Cost < best.Cost) {
			best, found = e, true
		}
	}

	return best, found
}

// MeasurePath builds a Path for the node sequence nodes, choosing for each
// hop the arc with the lowest distance (then the lowest cost) when parallel
// arcs exist. It returns ErrNoArc when a hop is missing and nil for an empty
// sequence. MeasurePath does not check for repeated nodes.
//
// Complexity: O(Σ out-degree of the visited nodes).
func MeasurePath[N comparable](g Graph[N], nodes []N) (*Path[N], error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	p := TrivialPath(nodes[0])
	for i := 1; i < len(nodes); i++ {
		e, ok := g.preferredArc(nodes[i-1], nodes[i])
		if !ok {
			return nil, fmt.Errorf("%w: %v→%v", ErrNoArc, nodes[i-1], nodes[i])
		}
		p.push(e)
	}

	return p, nil
}

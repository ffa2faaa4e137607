package core

import (
	"fmt"
	"strings"
)

// TrivialPath returns the zero-length path that starts and ends at n.
func TrivialPath[N comparable](n N) *Path[N] {
	return &Path[N]{Nodes: []N{n}, Edges: []Edge[N]{}}
}

// push extends p by arc e, leaving Nodes[len-1] as the arc's source.
func (p *Path[N]) push(e Edge[N]) {
	p.Nodes = append(p.Nodes, e.To)
	p.Edges = append(p.Edges, e)
	p.TotalDistance += e.Distance
	p.TotalCost += e.Cost
}

// Len returns the number of arcs in p (zero for a trivial path).
func (p *Path[N]) Len() int {
	return len(p.Edges)
}

// Start returns the first node of p.
func (p *Path[N]) Start() N {
	return p.Nodes[0]
}

// End returns the last node of p.
func (p *Path[N]) End() N {
	return p.Nodes[len(p.Nodes)-1]
}

// Contains reports whether n is one of the nodes of p.
func (p *Path[N]) Contains(n N) bool {
	for _, v := range p.Nodes {
		if v == n {
			return true
		}
	}

	return false
}

// Equal reports whether p and q visit the same node sequence.
// Path identity is the node sequence; parallel arcs do not make paths distinct.
func (p *Path[N]) Equal(q *Path[N]) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.Nodes) != len(q.Nodes) {
		return false
	}
	for i := range p.Nodes {
		if p.Nodes[i] != q.Nodes[i] {
			return false
		}
	}

	return true
}

// HasPrefix reports whether the first len(prefix) nodes of p are prefix.
func (p *Path[N]) HasPrefix(prefix []N) bool {
	if len(prefix) > len(p.Nodes) {
		return false
	}
	for i := range prefix {
		if p.Nodes[i] != prefix[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of p.
func (p *Path[N]) Clone() *Path[N] {
	if p == nil {
		return nil
	}
	c := &Path[N]{
		Nodes:         make([]N, len(p.Nodes)),
		Edges:         make([]Edge[N], len(p.Edges)),
		TotalDistance: p.TotalDistance,
		TotalCost:     p.TotalCost,
	}
	copy(c.Nodes, p.Nodes)
	copy(c.Edges, p.Edges)

	return c
}

// Prefix returns the sub-path of p ending at node index i (0 ≤ i < len(Nodes)),
// with its metrics recomputed from the arcs it keeps. It panics when i is out
// of range, like slicing does.
func (p *Path[N]) Prefix(i int) *Path[N] {
	if i < 0 || i >= len(p.Nodes) {
		panic(fmt.Sprintf("core: Path.Prefix(%d) out of range [0,%d)", i, len(p.Nodes)))
	}
	sub := TrivialPath(p.Nodes[0])
	for _, e := range p.Edges[:i] {
		sub.push(e)
	}

	return sub
}

// Append returns a new path made of p followed by q. q must start where p
// ends; the shared junction node appears once. Neither input is modified.
// It panics when the endpoints do not meet.
func (p *Path[N]) Append(q *Path[N]) *Path[N] {
	if p.End() != q.Start() {
		panic(fmt.Sprintf("core: Path.Append: %v does not meet %v", p.End(), q.Start()))
	}
	out := p.Clone()
	for _, e := range q.Edges {
		out.push(e)
	}

	return out
}

// String renders p as "A→B→C (distance=…, cost=…)".
func (p *Path[N]) String() string {
	if p == nil {
		return "<no path>"
	}
	var b strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			b.WriteString("→")
		}
		fmt.Fprint(&b, n)
	}
	fmt.Fprintf(&b, " (distance=%g, cost=%g)", p.TotalDistance, p.TotalCost)

	return b.String()
}

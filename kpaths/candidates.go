package kpaths

import (
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

// seenSet records node sequences already produced, as a trie keyed by node.
type seenSet[N comparable] struct {
	root *trieNode[N]
}

type trieNode[N comparable] struct {
	next     map[N]*trieNode[N]
	terminal bool
}

func newSeenSet[N comparable]() *seenSet[N] {
	return &seenSet[N]{root: &trieNode[N]{}}
}

// add records nodes and reports whether the sequence was new.
// Complexity: O(len(nodes)).
func (s *seenSet[N]) add(nodes []N) bool {
	cur := s.root
	for _, n := range nodes {
		nxt, ok := cur.next[n]
		if !ok {
			if cur.next == nil {
				cur.next = make(map[N]*trieNode[N], 1)
			}
			nxt = &trieNode[N]{}
			cur.next[n] = nxt
		}
		cur = nxt
	}
	if cur.terminal {
		return false
	}
	cur.terminal = true

	return true
}

// candidate is a path waiting in the cache, seq being its discovery order.
type candidate[N comparable] struct {
	path *core.Path[N]
	seq  int
}

// before orders candidates by distance, then cost, then discovery.
func (c candidate[N]) before(o candidate[N]) bool {
	if c.path.TotalDistance != o.path.TotalDistance {
		return c.path.TotalDistance < o.path.TotalDistance
	}
	if c.path.TotalCost != o.path.TotalCost {
		return c.path.TotalCost < o.path.TotalCost
	}

	return c.seq < o.seq
}

// candidateCache keeps candidates sorted best-first.
type candidateCache[N comparable] struct {
	items []candidate[N]
	seq   int
}

func (c *candidateCache[N]) Len() int { return len(c.items) }

// push inserts p at its sorted position.
// Complexity: O(log n) search plus O(n) shift.
func (c *candidateCache[N]) push(p *core.Path[N]) {
	cand := candidate[N]{path: p, seq: c.seq}
	c.seq++
	i := sort.Search(len(c.items), func(i int) bool { return cand.before(c.items[i]) })
	c.items = append(c.items, candidate[N]{})
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = cand
}

// pop removes and returns the best candidate.
func (c *candidateCache[N]) pop() *core.Path[N] {
	p := c.items[0].path
	c.items[0] = candidate[N]{}
	c.items = c.items[1:]

	return p
}

// trim keeps only the n best candidates and returns how many were dropped.
func (c *candidateCache[N]) trim(n int) int {
	if len(c.items) <= n {
		return 0
	}
	dropped := len(c.items) - n
	for i := n; i < len(c.items); i++ {
		c.items[i] = candidate[N]{}
	}
	c.items = c.items[:n]

	return dropped
}

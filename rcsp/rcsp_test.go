// Package rcsp_test contains unit tests for FindConstrainedPath: input
// validation, optimal choice under the budget, tie-breaking, options and
// agreement with brute-force enumeration on random graphs.
package rcsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/rcsp"
)

// diamond has a short expensive branch via B and a long cheap one via C.
func diamond() core.Graph[string] {
	return core.Graph[string]{
		"A": {{To: "B", Distance: 10, Cost: 20}, {To: "C", Distance: 15, Cost: 10}},
		"B": {{To: "D", Distance: 5, Cost: 10}},
		"C": {{To: "D", Distance: 5, Cost: 10}},
		"D": {},
	}
}

// complexGraph is a six-node graph with several competing routes A→F.
func complexGraph() core.Graph[string] {
	return core.Graph[string]{
		"A": {{To: "B", Distance: 4, Cost: 10}, {To: "C", Distance: 2, Cost: 3}},
		"B": {{To: "D", Distance: 5, Cost: 4}, {To: "E", Distance: 10, Cost: 2}},
		"C": {{To: "B", Distance: 1, Cost: 2}, {To: "D", Distance: 8, Cost: 7}},
		"D": {{To: "E", Distance: 2, Cost: 5}, {To: "F", Distance: 6, Cost: 1}},
		"E": {{To: "F", Distance: 3, Cost: 8}},
		"F": {},
	}
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned for invalid inputs, never nil paths.
// ------------------------------------------------------------------------

func TestFindConstrainedPath_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		g      core.Graph[string]
		start  string
		end    string
		budget float64
		want   error
	}{
		{"dangling edge", core.Graph[string]{"A": {{To: "Z"}}}, "A", "A", 1, core.ErrDanglingEdge},
		{"negative metric", core.Graph[string]{"A": {{To: "B", Distance: -1}}, "B": nil}, "A", "B", 1, core.ErrBadMetric},
		{"self-loop", core.Graph[string]{"A": {{To: "A"}}}, "A", "A", 1, core.ErrSelfLoop},
		{"start missing", diamond(), "X", "D", 10, rcsp.ErrNodeNotFound},
		{"end missing", diamond(), "A", "X", 10, rcsp.ErrNodeNotFound},
		{"negative budget", diamond(), "A", "D", -1, rcsp.ErrNegativeBudget},
		{"NaN budget", diamond(), "A", "D", math.NaN(), rcsp.ErrNegativeBudget},
		{"negative budget, start == end", diamond(), "A", "A", -1, rcsp.ErrNegativeBudget},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := rcsp.FindConstrainedPath(tc.g, tc.start, tc.end, tc.budget)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			assert.Nil(t, p)
		})
	}
}

func TestFindConstrainedPath_InvalidGraphIsUmbrella(t *testing.T) {
	g := core.Graph[string]{"A": {{To: "B", Cost: math.Inf(1)}}, "B": nil}
	_, err := rcsp.FindConstrainedPath(g, "A", "B", 10)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrBadMetric)
}

func TestFindConstrainedPath_OptionTypeMismatch(t *testing.T) {
	_, err := rcsp.FindConstrainedPath(diamond(), "A", "D", 100, rcsp.WithExcludedNodes(1, 2))
	assert.ErrorIs(t, err, rcsp.ErrOptionType)

	_, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 100,
		rcsp.WithOnExpand(func(int, float64, float64) {}))
	assert.ErrorIs(t, err, rcsp.ErrOptionType)

	_, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 100, rcsp.WithFixedPrefix(1, 2))
	assert.ErrorIs(t, err, rcsp.ErrOptionType)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { rcsp.WithMaxExpansions(-1) })
	assert.Panics(t, func() { rcsp.WithEpsilon(-1e-3) })
	assert.Panics(t, func() { rcsp.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { rcsp.WithEpsilon(math.Inf(1)) })
	assert.NotPanics(t, func() { rcsp.WithMaxExpansions(0) })
	assert.NotPanics(t, func() { rcsp.WithEpsilon(0) })
}

// ------------------------------------------------------------------------
// 2. Basic behaviour: optimal path under the budget, nil when infeasible.
// ------------------------------------------------------------------------

func TestFindConstrainedPath_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		g         core.Graph[string]
		start     string
		end       string
		budget    float64
		wantNodes []string // nil means no path
		wantDist  float64
		wantCost  float64
	}{
		{
			name:      "direct arc within budget",
			g:         core.Graph[string]{"A": {{To: "B", Distance: 10, Cost: 5}}, "B": {}},
			start:     "A", end: "B", budget: 10,
			wantNodes: []string{"A", "B"}, wantDist: 10, wantCost: 5,
		},
		{
			name:   "direct arc over budget",
			g:      core.Graph[string]{"A": {{To: "B", Distance: 10, Cost: 100}}, "B": {}},
			start:  "A", end: "B", budget: 50,
		},
		{
			name:      "shortest path fits exactly",
			g:         diamond(),
			start:     "A", end: "D", budget: 30,
			wantNodes: []string{"A", "B", "D"}, wantDist: 15, wantCost: 30,
		},
		{
			name:      "shortest path one unit too expensive",
			g:         diamond(),
			start:     "A", end: "D", budget: 29,
			wantNodes: []string{"A", "C", "D"}, wantDist: 20, wantCost: 20,
		},
		{
			name: "cheap detour when shortest is too expensive",
			g: core.Graph[string]{
				"A": {{To: "B", Distance: 5, Cost: 100}, {To: "C", Distance: 10, Cost: 5}},
				"B": {{To: "D", Distance: 1, Cost: 1}},
				"C": {{To: "D", Distance: 1, Cost: 1}},
				"D": {},
			},
			start:     "A", end: "D", budget: 50,
			wantNodes: []string{"A", "C", "D"}, wantDist: 11, wantCost: 6,
		},
		{
			name:   "unreachable end",
			g:      core.Graph[string]{"A": {{To: "B", Distance: 5, Cost: 5}}, "B": {}, "C": {}},
			start:  "A", end: "C", budget: 100,
		},
		{
			name:      "start equals end",
			g:         core.Graph[string]{"A": {}},
			start:     "A", end: "A", budget: 100,
			wantNodes: []string{"A"},
		},
		{
			name:      "start equals end with zero budget",
			g:         diamond(),
			start:     "B", end: "B", budget: 0,
			wantNodes: []string{"B"},
		},
		{
			name:      "complex graph",
			g:         complexGraph(),
			start:     "A", end: "F", budget: 15,
			wantNodes: []string{"A", "C", "B", "D", "F"}, wantDist: 14, wantCost: 10,
		},
		{
			name:      "complex graph unconstrained",
			g:         complexGraph(),
			start:     "A", end: "F", budget: math.Inf(1),
			wantNodes: []string{"A", "C", "B", "D", "E", "F"}, wantDist: 13, wantCost: 22,
		},
		{
			name: "equal distance prefers lower cost",
			g: core.Graph[string]{
				"A": {{To: "B", Distance: 5, Cost: 9}, {To: "C", Distance: 5, Cost: 3}},
				"B": {{To: "D", Distance: 5, Cost: 1}},
				"C": {{To: "D", Distance: 5, Cost: 1}},
				"D": {},
			},
			start:     "A", end: "D", budget: 100,
			wantNodes: []string{"A", "C", "D"}, wantDist: 10, wantCost: 4,
		},
		{
			name: "full tie keeps first discovered",
			g: core.Graph[string]{
				"A": {{To: "B", Distance: 1, Cost: 1}, {To: "C", Distance: 1, Cost: 1}},
				"B": {{To: "D", Distance: 1, Cost: 1}},
				"C": {{To: "D", Distance: 1, Cost: 1}},
				"D": {},
			},
			start:     "A", end: "D", budget: 2,
			wantNodes: []string{"A", "B", "D"}, wantDist: 2, wantCost: 2,
		},
		{
			name: "cycles do not trap the search",
			g: core.Graph[string]{
				"A": {{To: "B", Distance: 1, Cost: 1}},
				"B": {{To: "A", Distance: 1, Cost: 0}, {To: "C", Distance: 1, Cost: 1}},
				"C": {{To: "B", Distance: 0, Cost: 0}},
			},
			start:     "A", end: "C", budget: 2,
			wantNodes: []string{"A", "B", "C"}, wantDist: 2, wantCost: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := rcsp.FindConstrainedPath(tc.g, tc.start, tc.end, tc.budget)
			require.NoError(t, err)
			if tc.wantNodes == nil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tc.wantNodes, p.Nodes)
			assert.Equal(t, tc.wantDist, p.TotalDistance)
			assert.Equal(t, tc.wantCost, p.TotalCost)
			assert.Len(t, p.Edges, len(p.Nodes)-1)
		})
	}
}

func TestFindConstrainedPath_ParallelArcs(t *testing.T) {
	g := core.Graph[string]{
		"A": {{To: "B", Distance: 1, Cost: 10}, {To: "B", Distance: 4, Cost: 2}},
		"B": {},
	}

	p, err := rcsp.FindConstrainedPath(g, "A", "B", 10)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1.0, p.TotalDistance)

	p, err = rcsp.FindConstrainedPath(g, "A", "B", 5)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 4.0, p.TotalDistance)
	assert.Equal(t, g["A"][1], p.Edges[0], "path records the arc actually used")
}

func TestFindConstrainedPath_EpsilonTolerance(t *testing.T) {
	g := core.Graph[string]{
		"A": {{To: "B", Distance: 1, Cost: 0.1}},
		"B": {{To: "C", Distance: 1, Cost: 0.2}},
		"C": {},
	}

	p, err := rcsp.FindConstrainedPath(g, "A", "C", 0.3)
	require.NoError(t, err)
	require.NotNil(t, p, "0.1+0.2 fits a budget of 0.3 within the default tolerance")

	p, err = rcsp.FindConstrainedPath(g, "A", "C", 0.3, rcsp.WithEpsilon(0))
	require.NoError(t, err)
	assert.Nil(t, p, "strict comparison rejects the rounded sum")

	// The forward sum (0.3+0.2)+0.1 equals the budget exactly, while the
	// reverse cost bound 0.3+(0.2+0.1) rounds above it.
	chain := core.Graph[string]{
		"A": {{To: "B", Distance: 1, Cost: 0.3}},
		"B": {{To: "C", Distance: 1, Cost: 0.2}},
		"C": {{To: "D", Distance: 1, Cost: 0.1}},
		"D": {},
	}
	budget := (0.3 + 0.2) + 0.1
	p, err = rcsp.FindConstrainedPath(chain, "A", "D", budget, rcsp.WithEpsilon(0))
	require.NoError(t, err)
	require.NotNil(t, p, "a path costing exactly the budget is feasible")
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)
	assert.Equal(t, budget, p.TotalCost)
}

// TestFindConstrainedPath_Ladder checks the closed-form optimum of the
// two-rail ladder: j fast steps cost 3j+(n-1-j) and run j+3(n-1-j).
func TestFindConstrainedPath_Ladder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ladder(5))
	require.NoError(t, err)
	end := builder.LadderFastID(4)

	tests := []struct {
		budget   float64
		wantDist float64 // negative means no path
		wantCost float64
	}{
		{3, -1, 0},
		{4, 12, 4},
		{5, 12, 4},
		{6, 10, 6},
		{8, 8, 8},
		{11, 6, 10},
		{12, 4, 12},
		{100, 4, 12},
	}
	for _, tc := range tests {
		p, err := rcsp.FindConstrainedPath(g, builder.LadderFastID(0), end, tc.budget)
		require.NoError(t, err)
		if tc.wantDist < 0 {
			assert.Nil(t, p, "budget %g", tc.budget)
			continue
		}
		require.NotNil(t, p, "budget %g", tc.budget)
		assert.Equal(t, tc.wantDist, p.TotalDistance, "budget %g", tc.budget)
		assert.Equal(t, tc.wantCost, p.TotalCost, "budget %g", tc.budget)
	}
}

// ------------------------------------------------------------------------
// 3. Options: exclusions, expansion cap, statistics, hooks, bounds.
// ------------------------------------------------------------------------

func TestFindConstrainedPath_Exclusions(t *testing.T) {
	p, err := rcsp.FindConstrainedPath(diamond(), "A", "D", 100, rcsp.WithExcludedNodes("B"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "C", "D"}, p.Nodes)

	p, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 100,
		rcsp.WithExcludedArcs(rcsp.Arc[string]{From: "B", To: "D"}))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"A", "C", "D"}, p.Nodes)

	p, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 100,
		rcsp.WithExcludedNodes("B"), rcsp.WithExcludedNodes("C"))
	require.NoError(t, err)
	assert.Nil(t, p, "repeated exclusions accumulate")

	p, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 100, rcsp.WithExcludedNodes("A"))
	require.NoError(t, err)
	assert.NotNil(t, p, "the start node is never filtered")
}

func TestFindConstrainedPath_FixedPrefix(t *testing.T) {
	g := core.Graph[string]{
		"A": {{To: "B", Distance: 1, Cost: 5}, {To: "B", Distance: 2, Cost: 1}, {To: "X", Distance: 1, Cost: 1}},
		"B": {{To: "T", Distance: 1, Cost: 0}, {To: "X", Distance: 1, Cost: 3}},
		"X": {{To: "T", Distance: 1, Cost: 0}},
		"T": {},
	}

	tests := []struct {
		name     string
		budget   float64
		opts     []rcsp.Option
		want     []string
		wantDist float64
		wantCost float64
	}{
		{"free", 5, nil, []string{"A", "X", "T"}, 2, 1},
		{"pinned, fast arc fits", 5, []rcsp.Option{rcsp.WithFixedPrefix("A", "B")}, []string{"A", "B", "T"}, 2, 5},
		{"pinned, slow arc needed", 4, []rcsp.Option{rcsp.WithFixedPrefix("A", "B")}, []string{"A", "B", "T"}, 3, 1},
		{"pinned with banned exit", 5, []rcsp.Option{
			rcsp.WithFixedPrefix("A", "B"),
			rcsp.WithExcludedArcs(rcsp.Arc[string]{From: "B", To: "T"}),
		}, []string{"A", "B", "X", "T"}, 4, 4},
		{"single-node prefix", 5, []rcsp.Option{rcsp.WithFixedPrefix("A")}, []string{"A", "X", "T"}, 2, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := rcsp.FindConstrainedPath(g, "A", "T", tc.budget, tc.opts...)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.Equal(t, tc.want, p.Nodes)
			assert.Equal(t, tc.wantDist, p.TotalDistance)
			assert.Equal(t, tc.wantCost, p.TotalCost)
		})
	}
}

func TestFindConstrainedPath_MaxExpansions(t *testing.T) {
	var st rcsp.Stats
	p, err := rcsp.FindConstrainedPath(diamond(), "A", "D", 100,
		rcsp.WithMaxExpansions(1), rcsp.WithStats(&st))
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, st.Truncated)
	assert.Equal(t, 1, st.Expansions)

	p, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 100,
		rcsp.WithMaxExpansions(10), rcsp.WithStats(&st))
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.False(t, st.Truncated, "stats are reset per call")
}

func TestFindConstrainedPath_Stats(t *testing.T) {
	var st rcsp.Stats
	_, err := rcsp.FindConstrainedPath(diamond(), "A", "A", 0, rcsp.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, rcsp.Stats{Labels: 1}, st)

	_, err = rcsp.FindConstrainedPath(diamond(), "A", "D", 29, rcsp.WithStats(&st))
	require.NoError(t, err)
	assert.Positive(t, st.Expansions)
	assert.Positive(t, st.Labels)
	assert.Positive(t, st.Pruned, "B→D cannot finish within 29")
}

func TestFindConstrainedPath_OnExpandOrder(t *testing.T) {
	var dists []float64
	_, err := rcsp.FindConstrainedPath(complexGraph(), "A", "F", 100,
		rcsp.WithOnExpand(func(_ string, d, _ float64) { dists = append(dists, d) }))
	require.NoError(t, err)
	require.NotEmpty(t, dists)
	for i := 1; i < len(dists); i++ {
		assert.LessOrEqual(t, dists[i-1], dists[i], "labels expand in distance order")
	}
}

func TestCostBounds(t *testing.T) {
	g := complexGraph()
	b := rcsp.NewCostBounds(g, "F")
	assert.Equal(t, "F", b.Target())
	assert.Equal(t, 0.0, b.MinCost("F"))
	assert.Equal(t, 1.0, b.MinCost("D"))
	assert.Equal(t, 5.0, b.MinCost("B"))
	assert.Equal(t, 7.0, b.MinCost("C"))
	assert.Equal(t, 10.0, b.MinCost("A"))
	assert.True(t, math.IsInf(b.MinCost("nowhere"), 1))

	// shared bounds give the same answer
	want, err := rcsp.FindConstrainedPath(g, "A", "F", 15)
	require.NoError(t, err)
	got, err := rcsp.FindConstrainedPath(g, "A", "F", 15, rcsp.WithCostBounds(b))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// bounds for a different target are ignored
	other := rcsp.NewCostBounds(g, "E")
	got, err = rcsp.FindConstrainedPath(g, "A", "F", 15, rcsp.WithCostBounds(other))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConstrainedPath_DoesNotMutateGraph(t *testing.T) {
	g := complexGraph()
	before := complexGraph()
	_, err := rcsp.FindConstrainedPath(g, "A", "F", 15)
	require.NoError(t, err)
	assert.Equal(t, before, g)
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs.
// ------------------------------------------------------------------------

// bruteForce enumerates every simple path start→end and returns the least
// distance (then cost) among those within budget, or ok=false.
func bruteForce(g core.Graph[string], start, end string, budget float64) (dist, cost float64, ok bool) {
	onPath := map[string]bool{start: true}
	var walk func(u string, d, c float64)
	walk = func(u string, d, c float64) {
		if u == end {
			if !ok || d < dist || (d == dist && c < cost) {
				dist, cost, ok = d, c, true
			}
			return
		}
		for _, e := range g[u] {
			if onPath[e.To] || c+e.Cost > budget {
				continue
			}
			onPath[e.To] = true
			walk(e.To, d+e.Distance, c+e.Cost)
			onPath[e.To] = false
		}
	}
	walk(start, 0, 0)

	return dist, cost, ok
}

func TestFindConstrainedPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerMetrics(1, 9, 0, 9)},
			builder.RandomSparse(8, 0.35),
		)
		require.NoError(t, err)

		for _, budget := range []float64{0, 5, 10, 20, 40} {
			wantD, wantC, ok := bruteForce(g, "0", "7", budget)
			p, err := rcsp.FindConstrainedPath(g, "0", "7", budget)
			require.NoError(t, err)
			if !ok {
				assert.Nil(t, p, "seed %d budget %g", seed, budget)
				continue
			}
			require.NotNil(t, p, "seed %d budget %g", seed, budget)
			assert.Equal(t, wantD, p.TotalDistance, "seed %d budget %g", seed, budget)
			assert.Equal(t, wantC, p.TotalCost, "seed %d budget %g", seed, budget)
			assertConsistent(t, g, p, budget)
		}
	}
}

func TestFindConstrainedPath_MonotoneInBudget(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(99), builder.WithIntegerMetrics(1, 20, 1, 20)},
		builder.Grid(4, 4),
	)
	require.NoError(t, err)
	start, end := builder.GridID(0, 0), builder.GridID(3, 3)

	prev := math.Inf(1)
	for budget := 0.0; budget <= 150; budget += 10 {
		p, err := rcsp.FindConstrainedPath(g, start, end, budget)
		require.NoError(t, err)
		if p == nil {
			require.True(t, math.IsInf(prev, 1), "a larger budget lost a path at %g", budget)
			continue
		}
		assert.LessOrEqual(t, p.TotalDistance, prev)
		prev = p.TotalDistance
	}
}

// assertConsistent checks the structural promises of every returned path.
func assertConsistent(t *testing.T, g core.Graph[string], p *core.Path[string], budget float64) {
	t.Helper()
	seen := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		assert.False(t, seen[n], "node %s repeated in %v", n, p.Nodes)
		seen[n] = true
	}
	var d, c float64
	for i, e := range p.Edges {
		assert.Equal(t, p.Nodes[i+1], e.To)
		assert.Contains(t, g[p.Nodes[i]], e)
		d += e.Distance
		c += e.Cost
	}
	assert.Equal(t, d, p.TotalDistance)
	assert.Equal(t, c, p.TotalCost)
	assert.LessOrEqual(t, p.TotalCost, budget+rcsp.DefaultEpsilon)
}

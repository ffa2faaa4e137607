package graphfile_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/graphfile"
)

const sampleYAML = `
nodes:
  A: [{to: B, distance: 10, cost: 5}, {to: C, distance: 15, cost: 3}]
  B: [{to: D, distance: 5, cost: 5}]
  C: [{to: D, distance: 5, cost: 5}]
  D: []
`

func TestDecode(t *testing.T) {
	g, err := graphfile.Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, core.Edge[string]{To: "C", Distance: 15, Cost: 3}, g["A"][1])
	assert.Empty(t, g["D"])
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"nodes": {"A": [{"to": "B", "distance": 1.5, "cost": 2}], "B": []}}`
	g, err := graphfile.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1.5, g["A"][0].Distance)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", graphfile.ErrDecode},
		{"not yaml", "nodes: [", graphfile.ErrDecode},
		{"unknown field", "nodes: {A: [{to: A2, weight: 1}]}", graphfile.ErrDecode},
		{"duplicate key", "nodes:\n  A: []\n  A: []\n", graphfile.ErrDecode},
		{"dangling", "nodes: {A: [{to: Z, distance: 1, cost: 1}]}", core.ErrDanglingEdge},
		{"negative", "nodes: {A: [{to: B, distance: -1, cost: 1}], B: []}", core.ErrBadMetric},
		{"self-loop", "nodes: {A: [{to: A, distance: 1, cost: 1}]}", core.ErrSelfLoop},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := graphfile.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestDecode_NoNodes(t *testing.T) {
	g, err := graphfile.Decode(strings.NewReader("nodes: {}\n"))
	require.NoError(t, err)
	assert.NotNil(t, g)
	assert.Zero(t, g.NodeCount())
}

func TestEncode_RoundTripAndStableOrder(t *testing.T) {
	g := core.Graph[string]{
		"C": {{To: "A", Distance: 0.25, Cost: 4}},
		"A": {{To: "B", Distance: 1, Cost: 2}, {To: "C", Distance: 3, Cost: 0}},
		"B": nil,
	}

	var first, second bytes.Buffer
	require.NoError(t, graphfile.Encode(&first, g))
	require.NoError(t, graphfile.Encode(&second, g))
	assert.Equal(t, first.String(), second.String())

	out := first.String()
	assert.Less(t, strings.Index(out, "A:"), strings.Index(out, "B:"))
	assert.Less(t, strings.Index(out, "B:"), strings.Index(out, "C:"))

	back, err := graphfile.Decode(&first)
	require.NoError(t, err)
	assert.Equal(t, g["A"], back["A"])
	assert.Equal(t, g["C"], back["C"])
	assert.Empty(t, back["B"])
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	g, err := graphfile.Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	require.NoError(t, graphfile.Save(path, g))
	back, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g, back)

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeQueries(t *testing.T) {
	doc := `
queries:
  - {name: fast, kind: path, from: A, to: D, budget: 30}
  - {name: alts, kind: kpaths, from: A, to: D, budget: 30, k: 3}
  - {name: tour, kind: route, from: A, via: [B], to: D, budget: .inf}
`
	b, err := graphfile.DecodeQueries(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, b.Queries, 3)
	assert.Equal(t, 3, b.Queries[1].K)
	assert.Equal(t, []string{"B"}, b.Queries[2].Via)
	assert.True(t, math.IsInf(b.Queries[2].Budget, 1))
}

func TestDecodeQueries_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", graphfile.ErrDecode},
		{"unknown field", "queries: [{name: a, kind: path, from: A, to: B, budget: 1, color: red}]", graphfile.ErrDecode},
		{"no queries", "queries: []", graphfile.ErrQuery},
		{"missing name", "queries: [{kind: path, from: A, to: B, budget: 1}]", graphfile.ErrQuery},
		{"bad kind", "queries: [{name: a, kind: fly, from: A, to: B, budget: 1}]", graphfile.ErrQuery},
		{"missing to", "queries: [{name: a, kind: path, from: A, budget: 1}]", graphfile.ErrQuery},
		{"negative budget", "queries: [{name: a, kind: path, from: A, to: B, budget: -1}]", graphfile.ErrQuery},
		{"NaN budget", "queries: [{name: a, kind: path, from: A, to: B, budget: .nan}]", graphfile.ErrQuery},
		{"kpaths without k", "queries: [{name: a, kind: kpaths, from: A, to: B, budget: 1}]", graphfile.ErrQuery},
		{"via on path", "queries: [{name: a, kind: path, from: A, to: B, via: [C], budget: 1}]", graphfile.ErrQuery},
		{"empty via entry", "queries: [{name: a, kind: route, from: A, to: B, via: [''], budget: 1}]", graphfile.ErrQuery},
		{"duplicate names", "queries: [{name: a, kind: path, from: A, to: B, budget: 1}, {name: a, kind: path, from: B, to: A, budget: 1}]", graphfile.ErrQuery},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := graphfile.DecodeQueries(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, b)
		})
	}
}

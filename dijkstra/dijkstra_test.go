// SPDX-License-Identifier: MIT

// Package dijkstra_test validates FindPath: input validation, the reference
// scenarios, options, and distance/path consistency against an all-pairs oracle.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// mustGraph builds a directed graph from (from, to, weight) triples.
func mustGraph(t testing.TB, edges ...edge) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

type edge struct {
	from, to string
	w        float64
}

// requirePath fails with a readable diff when the paths differ.
func requirePath(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindPath_NilGraph(t *testing.T) {
	_, err := dijkstra.FindPath[string](nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	var g *core.Graph[string]
	_, err = dijkstra.FindPath[string](g, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestFindPath_NegativeWeightInAdjacency(t *testing.T) {
	a := core.Adjacency[string]{
		Nodes: []string{"A", "B", "C"},
		Edges: map[string][]core.Edge[string]{
			"C": {{To: "A", Weight: -1}}, // unreachable from A, caught by the pre-scan
			"A": {{To: "B", Weight: 1}},
		},
	}
	_, err := dijkstra.FindPath[string](a, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)

	// Trusted mode skips the scan; the unreachable bad edge is never seen.
	res, err := dijkstra.FindPath[string](a, "A", "B", dijkstra.WithTrustedWeights())
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Distance)
}

func TestFindPath_InvalidWeightDuringRelaxation(t *testing.T) {
	// "X" is not declared, so the pre-scan cannot see its edges.
	a := core.Adjacency[string]{
		Nodes: []string{"A"},
		Edges: map[string][]core.Edge[string]{
			"A": {{To: "X", Weight: 1}},
			"X": {{To: "A", Weight: math.NaN()}},
		},
	}
	_, err := dijkstra.FindPath[string](a, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
}

func TestValidateWeights(t *testing.T) {
	bad := core.Adjacency[string]{
		Nodes: []string{"A", "B"},
		Edges: map[string][]core.Edge[string]{"B": {{To: "A", Weight: -2}}},
	}
	err := dijkstra.ValidateWeights[string](bad)
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
	require.ErrorIs(t, err, core.ErrInvalidWeight)

	require.NoError(t, dijkstra.ValidateWeights[string](mustGraph(t, edge{"A", "B", 1})))
	require.ErrorIs(t, dijkstra.ValidateWeights[string](nil), dijkstra.ErrNilGraph)
}

func TestFindPath_InvalidWeightMatchesCoreSentinel(t *testing.T) {
	a := core.Adjacency[string]{
		Nodes: []string{"A", "B"},
		Edges: map[string][]core.Edge[string]{"A": {{To: "B", Weight: math.NaN()}}},
	}
	_, err := dijkstra.FindPath[string](a, "A", "B")
	require.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestFindPath_OptionViolations(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 1})
	for name, opt := range map[string]dijkstra.Option{
		"negative max distance": dijkstra.WithMaxDistance(-1),
		"NaN max distance":      dijkstra.WithMaxDistance(math.NaN()),
		"zero threshold":        dijkstra.WithInfEdgeThreshold(0),
	} {
		_, err := dijkstra.FindPath(g, "A", "B", opt)
		require.ErrorIs(t, err, dijkstra.ErrOptionViolation, name)
	}
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestFindPath_ScenarioA_ShortestOfTwo(t *testing.T) {
	g := mustGraph(t,
		edge{"A", "B", 1}, edge{"B", "D", 1},
		edge{"A", "C", 4}, edge{"C", "D", 1},
	)

	res, err := dijkstra.FindPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distance)
	requirePath(t, []string{"A", "B", "D"}, res.Path)
	require.True(t, res.Reachable())
	require.Equal(t, 2, res.Hops())
}

func TestFindPath_ScenarioB_Disconnected(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 1}, edge{"B", "D", 1})
	g.AddNode("E")

	res, err := dijkstra.FindPath(g, "A", "E")
	require.NoError(t, err, "unreachable is not an error")
	require.Empty(t, res.Path)
	require.True(t, math.IsInf(res.Distance, 1))
	require.False(t, res.Reachable())
	require.Equal(t, -1, res.Hops())
}

func TestFindPath_ScenarioC_EqualCostPaths(t *testing.T) {
	g := mustGraph(t,
		edge{"A", "B", 2}, edge{"A", "C", 2},
		edge{"B", "D", 2}, edge{"C", "D", 2},
	)

	res, err := dijkstra.FindPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Distance)
	require.Contains(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, res.Path)

	// FIFO ties: the first-inserted edge wins, every time.
	for i := 0; i < 10; i++ {
		again, err := dijkstra.FindPath(g, "A", "D")
		require.NoError(t, err)
		requirePath(t, []string{"A", "B", "D"}, again.Path)
	}
}

func TestFindPath_ScenarioD_SelfLoop(t *testing.T) {
	g := mustGraph(t, edge{"A", "A", 5})

	res, err := dijkstra.FindPath(g, "A", "A")
	require.NoError(t, err)
	require.Zero(t, res.Distance)
	requirePath(t, []string{"A"}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

func TestFindPath_StartNotDeclared(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 1})

	res, err := dijkstra.FindPath(g, "Q", "B")
	require.NoError(t, err)
	require.False(t, res.Reachable())

	res, err = dijkstra.FindPath(g, "Q", "Q")
	require.NoError(t, err)
	requirePath(t, []string{"Q"}, res.Path)
	require.Zero(t, res.Distance)
}

func TestFindPath_DanglingNeighborIsFollowed(t *testing.T) {
	a := core.Adjacency[string]{
		Nodes: []string{"A", "B"},
		Edges: map[string][]core.Edge[string]{
			"A":     {{To: "ghost", Weight: 1}},
			"ghost": {{To: "B", Weight: 1}},
		},
	}

	res, err := dijkstra.FindPath[string](a, "A", "B")
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distance)
	requirePath(t, []string{"A", "ghost", "B"}, res.Path)
}

func TestFindPath_ZeroWeightCycle(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 0}, edge{"B", "A", 0}, edge{"B", "C", 0})

	res, err := dijkstra.FindPath(g, "A", "C")
	require.NoError(t, err)
	require.Zero(t, res.Distance)
	requirePath(t, []string{"A", "B", "C"}, res.Path)
}

func TestFindPath_IntegerIDs(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 0.5))
	require.NoError(t, g.AddEdge(2, 3, 0.25))
	require.NoError(t, g.AddEdge(1, 3, 1))

	res, err := dijkstra.FindPath(g, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 0.75, res.Distance)
	require.Equal(t, []int{1, 2, 3}, res.Path)
}

func TestFindPath_StaleEntriesAreSkipped(t *testing.T) {
	// C is first pushed at 10, then improved to 2 via B; the 10 entry is stale.
	g := mustGraph(t,
		edge{"A", "C", 10}, edge{"A", "B", 1}, edge{"B", "C", 1},
		edge{"C", "D", 1}, edge{"A", "Z", 20},
	)

	res, err := dijkstra.FindPath(g, "A", "Z")
	require.NoError(t, err)
	require.Equal(t, 20.0, res.Distance)
	require.Equal(t, 1, res.Stats.Stale)
	require.Equal(t, res.Stats.Pushed, res.Stats.Extracted, "every entry was drained before Z")
}

func TestFindPath_EarlyExit(t *testing.T) {
	// D is never settled: the loop stops when B is extracted.
	g := mustGraph(t, edge{"A", "B", 1}, edge{"A", "C", 5}, edge{"C", "D", 1})

	res, err := dijkstra.FindPath(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Distance)
	require.Equal(t, 2, res.Stats.Extracted)
	require.Equal(t, 2, res.Stats.Relaxed)
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestFindPath_MaxDistance(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1})

	res, err := dijkstra.FindPath(g, "A", "C", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distance)

	res, err = dijkstra.FindPath(g, "A", "D", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.False(t, res.Reachable())

	res, err = dijkstra.FindPath(g, "A", "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	require.True(t, res.Reachable())
}

func TestFindPath_InfEdgeThreshold(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 2}, edge{"B", "C", 4}, edge{"A", "C", 10})
	require.NoError(t, g.AddEdge("A", "D", math.Inf(1)))

	res, err := dijkstra.FindPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, 6.0, res.Distance)

	res, err = dijkstra.FindPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	require.False(t, res.Reachable(), "both routes contain an edge ≥ 3")

	res, err = dijkstra.FindPath(g, "A", "D")
	require.NoError(t, err)
	require.False(t, res.Reachable(), "+Inf edges are impassable by default")
}

func TestFindPath_ContextCanceled(t *testing.T) {
	g := mustGraph(t, edge{"A", "B", 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.FindPath(g, "A", "B", dijkstra.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled))
}

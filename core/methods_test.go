// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction and query contracts.

package core_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common node IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

func TestGraph_AddNodeIdempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode(VertexA)
	g.AddNode(VertexA)
	g.AddNode(VertexB)

	require.Equal(t, 2, g.NodeCount())
	require.True(t, g.HasNode(VertexA))
	require.False(t, g.HasNode(VertexC))
	require.Equal(t, []string{VertexA, VertexB}, g.Nodes())
}

func TestGraph_AddEdgeRegistersEndpoints(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, 1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, 2.5))

	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Nodes())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.Directed())
	assert.Equal(t, []core.Edge[string]{{To: VertexB, Weight: 1}}, g.OutEdges(VertexA))
	assert.Nil(t, g.OutEdges(VertexC), "sink has no out-edges")
	assert.Nil(t, g.OutEdges("missing"))
}

func TestGraph_AddEdgeRejectsInvalidWeight(t *testing.T) {
	g := core.NewGraph[string]()
	for _, w := range []float64{-1, math.Inf(-1), math.NaN()} {
		err := g.AddEdge(VertexA, VertexB, w)
		require.Error(t, err)
		require.True(t, errors.Is(err, core.ErrInvalidWeight), "weight %g", w)
	}
	require.Zero(t, g.NodeCount(), "rejected edges must not register nodes")

	// +Inf is an impassable but legal edge.
	require.NoError(t, g.AddEdge(VertexA, VertexB, math.Inf(1)))
}

func TestGraph_ParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 1, 5))

	require.Equal(t, []core.Edge[int]{{To: 2, Weight: 3}, {To: 2, Weight: 1}, {To: 1, Weight: 5}}, g.OutEdges(1))
	require.Equal(t, 3, g.EdgeCount())
}

func TestGraph_Undirected(t *testing.T) {
	g := core.NewGraph[string](core.WithUndirected())
	require.NoError(t, g.AddEdge(VertexA, VertexB, 4))
	require.NoError(t, g.AddEdge(VertexC, VertexC, 1))

	require.False(t, g.Directed())
	require.Equal(t, []core.Edge[string]{{To: VertexA, Weight: 4}}, g.OutEdges(VertexB))
	require.Len(t, g.OutEdges(VertexC), 1, "self-loop is stored once")
	require.Equal(t, 3, g.EdgeCount())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(VertexA, VertexC, 2))
	g.AddNode(VertexD)

	assert.Len(t, g.OutEdges(VertexA), 1)
	assert.Len(t, c.OutEdges(VertexA), 2)
	assert.False(t, c.HasNode(VertexD))
	assert.False(t, g.HasNode(VertexC))
}

func TestGraph_OutEdgesAppendDoesNotAlias(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, 1))
	require.NoError(t, g.AddEdge(VertexA, VertexC, 1))

	edges := g.OutEdges(VertexA)
	_ = append(edges, core.Edge[string]{To: VertexD, Weight: 9})
	require.NoError(t, g.AddEdge(VertexA, VertexD, 3))

	require.Equal(t, 3.0, g.OutEdges(VertexA)[2].Weight)
}

func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	var wg sync.WaitGroup
	counts := make([]int, 16)
	for r := range counts {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for _, id := range g.NodeList() {
				counts[r] += len(g.OutEdges(id))
			}
		}(r)
	}
	wg.Wait()

	for _, c := range counts {
		require.Equal(t, 100, c)
	}
}

func TestAdjacency_Export(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, 2))
	g.AddNode(VertexC)

	a := g.Adjacency()
	require.Equal(t, []string{VertexA, VertexB, VertexC}, a.NodeList())
	require.Equal(t, []core.Edge[string]{{To: VertexB, Weight: 2}}, a.OutEdges(VertexA))
	require.Nil(t, a.OutEdges(VertexC))
}

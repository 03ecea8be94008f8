// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidWeight indicates a negative or NaN edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrMalformedGraph indicates an edge that references a node absent from the node set.
	ErrMalformedGraph = errors.New("core: malformed graph")
)

// Edge is one outgoing arc of a node: the neighbor it leads to and its cost.
type Edge[K comparable] struct {
	// To is the neighbor this edge leads to.
	To K

	// Weight is the non-negative traversal cost. +Inf marks an impassable edge.
	Weight float64
}

// ValidWeight reports whether w may be used as an edge weight.
// NaN and negative values (including -Inf) are rejected.
func ValidWeight(w float64) bool {
	return !math.IsNaN(w) && w >= 0
}

// GraphOption configures a Graph before first use.
type GraphOption func(*options)

type options struct {
	undirected bool
	capacity   int
}

// WithUndirected makes every AddEdge(u, v, w) also insert v→u with the same weight.
func WithUndirected() GraphOption {
	return func(o *options) { o.undirected = true }
}

// WithCapacity pre-sizes the node tables for roughly n nodes.
func WithCapacity(n int) GraphOption {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is a weighted graph over comparable node identifiers.
//
// nodes is the membership set, order keeps insertion order for Nodes(),
// adj maps a node to its ordered out-edges. A node without an adj entry
// simply has zero out-edges.
type Graph[K comparable] struct {
	mu sync.RWMutex

	undirected bool
	edgeCount  int

	nodes map[K]struct{}
	order []K
	adj   map[K][]Edge[K]
}

// NewGraph creates an empty directed Graph.
// Complexity: O(1) (O(n) when WithCapacity(n) is given).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K]{
		undirected: o.undirected,
		nodes:      make(map[K]struct{}, o.capacity),
		order:      make([]K, 0, o.capacity),
		adj:        make(map[K][]Edge[K], o.capacity),
	}
}

// Adjacency is the plain data shape of a graph: a node list plus
// out-edges keyed by node. It is what callers build when they do not
// want the locking Graph type. A missing Edges entry means zero
// out-edges.
//
// The shortest-path engine accepts an Adjacency directly and tolerates
// dangling references in it; FromAdjacency is the strict alternative.
type Adjacency[K comparable] struct {
	Nodes []K
	Edges map[K][]Edge[K]
}

// OutEdges returns the out-edges recorded for id, or nil.
func (a Adjacency[K]) OutEdges(id K) []Edge[K] {
	return a.Edges[id]
}

// NodeList returns the declared nodes. The slice is shared; do not modify it.
func (a Adjacency[K]) NodeList() []K {
	return a.Nodes
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node/edge lifecycle and read-only queries on Graph.
// Concurrency:
//   - Mutators take mu.Lock; queries take mu.RLock.
//   - OutEdges and NodeList hand out shared slices; callers must treat them as read-only.

package core

import "fmt"

// AddNode inserts id into the node set. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)
}

// AddEdge appends the edge from→to with the given weight, registering
// both endpoints if needed. With WithUndirected the mirror edge to→from is
// appended as well (a self-loop is stored once).
//
// Errors:
//   - ErrInvalidWeight if weight is negative or NaN. The graph is left unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, weight float64) error {
	if !ValidWeight(weight) {
		return fmt.Errorf("%w: edge %v→%v weight=%g", ErrInvalidWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)
	g.adj[from] = append(g.adj[from], Edge[K]{To: to, Weight: weight})
	g.edgeCount++
	if g.undirected && from != to {
		g.adj[to] = append(g.adj[to], Edge[K]{To: from, Weight: weight})
		g.edgeCount++
	}

	return nil
}

// addNodeLocked registers id; caller holds mu.
func (g *Graph[K]) addNodeLocked(id K) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
}

// HasNode reports whether id is in the node set.
func (g *Graph[K]) HasNode(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Nodes returns a copy of the node identifiers in insertion order.
// Complexity: O(V).
func (g *Graph[K]) Nodes() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// NodeList returns the node identifiers in insertion order without copying.
// The slice must not be modified.
func (g *Graph[K]) NodeList() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.order[:len(g.order):len(g.order)]
}

// OutEdges returns the out-edges of id in insertion order, or nil when id
// has none or is unknown. The slice is shared and must not be modified.
// Complexity: O(1).
func (g *Graph[K]) OutEdges(id K) []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.adj[id]

	return edges[:len(edges):len(edges)]
}

// NodeCount returns the number of nodes.
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of stored directed edges. In undirected
// mode each AddEdge between distinct nodes counts twice.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether AddEdge stores a single arc (true) or also its mirror.
func (g *Graph[K]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return !g.undirected
}

// Clone returns an independent deep copy of g: later mutation of either
// graph is invisible to the other.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[K]{
		undirected: g.undirected,
		edgeCount:  g.edgeCount,
		nodes:      make(map[K]struct{}, len(g.nodes)),
		order:      make([]K, len(g.order)),
		adj:        make(map[K][]Edge[K], len(g.adj)),
	}
	copy(out.order, g.order)
	for id := range g.nodes {
		out.nodes[id] = struct{}{}
	}
	for id, edges := range g.adj {
		cp := make([]Edge[K], len(edges))
		copy(cp, edges)
		out.adj[id] = cp
	}

	return out
}

// Adjacency exports g as the plain data shape. Slices are copies.
func (g *Graph[K]) Adjacency() Adjacency[K] {
	c := g.Clone()

	return Adjacency[K]{Nodes: c.order, Edges: c.adj}
}

// SPDX-License-Identifier: MIT

// Package core defines the weighted directed Graph consumed by the
// shortest-path engine, together with the raw Adjacency shape that
// callers may build by hand.
//
// Node identifiers are any comparable Go value (string, int, a small
// struct of coordinates, ...). No ordering over identifiers is assumed;
// Nodes() reports them in insertion order so iteration is deterministic.
//
// Construction policy:
//
//   - AddEdge registers unknown endpoints implicitly, so a Graph can never
//     hold a dangling reference.
//   - Negative or NaN weights are rejected with ErrInvalidWeight. +Inf is
//     accepted and makes the edge impassable.
//   - Self-loops and parallel edges are permitted.
//   - FromAdjacency converts a hand-built Adjacency strictly: every dangling
//     key or neighbor yields ErrMalformedGraph, every bad weight
//     ErrInvalidWeight, and all problems are reported at once.
//
// Concurrency:
//
//	Mutation takes the write lock; reads take the read lock. Any number of
//	shortest-path queries may run concurrently against one Graph as long
//	as nobody mutates it meanwhile. Use Clone to snapshot a graph that is
//	still being edited.
//
// Example:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "D", 1)
//	fmt.Println(g.NodeCount(), g.EdgeCount()) // 3 2
package core

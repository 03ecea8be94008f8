// Package lvroute finds lowest-cost routes through weighted directed graphs.
//
// 🚀 What is lvroute?
//
//	A thread-safe, generic shortest-path toolkit that brings together:
//		• Core primitives: nodes & weighted edges under R/W locks
//		• Engine: Dijkstra with a FIFO-tie binary heap and lazy decrease-key
//		• Generators: grid, path, cycle, complete and random sparse graphs
//		• Documents: YAML / JSON graph and query files
//		• Surfaces: a CLI, a concurrent batch runner and an HTTP service
//
// ✨ Guarantees
//
//   - Distances are exact for non-negative weights; negative or NaN weights
//     are rejected, never silently mis-routed
//   - Unreachable targets are a result (empty path, +Inf), not an error
//   - Equal-cost ties resolve the same way on every run
//   - Any number of queries may share one graph concurrently
//
// Packages:
//
//	core/       — Graph[K], Edge[K], Adjacency[K] & weight policy
//	frontier/   — min-priority queue of (node, priority) entries
//	dijkstra/   — FindPath, ShortestPathTree, options & Stats
//	builder/    — deterministic topology constructors
//	graphio/    — graph & query documents
//	gridgraph/  — terrain grids, passable regions & grid → graph
//	cmd/lvroute — route, tree, batch, serve, generate, terrain
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	FindPath(g, "A", "D") → [A B D], distance 2.
//
//	go get github.com/katalvlaran/lvroute
package lvroute

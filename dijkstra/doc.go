// SPDX-License-Identifier: MIT

// Package dijkstra implements the single-source shortest-path engine:
// Dijkstra's algorithm with a binary-heap frontier, early exit on the target
// and predecessor-based path reconstruction.
//
// Overview:
//
//   - FindPath(g, start, end) returns the cheapest route start → end and its
//     total cost. An unreachable target is a normal Result (empty path,
//     +Inf distance), never an error.
//   - ShortestPathTree(g, source) runs the same engine without a target and
//     answers many PathTo queries from one run.
//   - The engine reads the graph through the two-method Graph interface, so
//     both *core.Graph and a hand-built core.Adjacency can be queried.
//
// Algorithm:
//
//   - Each query allocates its own distance table, predecessor table and
//     frontier; nothing survives the call, so concurrent queries against one
//     unchanging graph share no mutable state.
//   - Relaxation requires a strict improvement (candidate < dist[v]).
//   - Improved nodes are re-inserted; older entries stay in the frontier and
//     are dropped when extracted with a priority above the recorded distance
//     (lazy decrease-key).
//   - The loop stops the first time the target is extracted. With
//     non-negative weights that distance is final.
//   - Nodes missing from the distance table count as +Inf, so edges that
//     point outside the declared node set are followed rather than rejected.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with E heap pushes in the worst case.
//   - Space: O(V + E) for the tables and the frontier.
//
// Errors:
//
//   - ErrNilGraph        the graph is nil.
//   - ErrInvalidWeight   a negative or NaN weight was found (pre-scan or relaxation).
//   - ErrOptionViolation an option was given an out-of-range value.
//   - context errors     the WithContext context ended; the partial state is discarded.
//
// Ties:
//
//	When several shortest paths exist, the one returned follows the edge
//	order of the graph: the frontier extracts equal priorities first-in
//	first-out, so a fixed graph always yields the same path.
package dijkstra

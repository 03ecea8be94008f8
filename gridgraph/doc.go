// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D terrain grid as a routing graph.
//
// What:
//
//   - Grid wraps a rectangular [][]int cost map. A cell whose value is at
//     least PassableThreshold can be entered at that cost; anything lower is
//     a wall.
//   - ToGraph emits a directed core.Graph[Point]: one arc per ordered pair of
//     neighboring passable cells, weighted by the cost of the cell entered
//     (×√2 for diagonal steps under Conn8).
//   - ConnectedComponents labels passable regions so a caller can tell that
//     two cells are mutually unreachable without running a query.
//   - Parse reads the plain-text grid format used by the terrain command.
//
// Diagonal steps never cut corners: moving from (x,y) to (x+1,y+1) requires
// both (x+1,y) and (x,y+1) to be passable.
//
// Complexity:
//
//   - ToGraph:             O(W×H×d) time and memory (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
//   - ErrMalformedGrid: Parse met something other than an integer.
package gridgraph

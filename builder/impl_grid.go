// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood.
//   - Node IDs use the fixed scheme "r,c" (row-major), ignoring WithIDPrefix.
//   - For every cell, emits Right then Bottom neighbor edges where they exist.
//     In directed graphs the reverse arcs are emitted as well, so any cell
//     reaches any other.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the node ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Add all cells in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c))
			}
		}

		// 3) Emit Right and Bottom neighbors.
		mirror := g.Directed()
		link := func(u, v string) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if mirror {
				return addEdge(g, cfg, methodGrid, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		neighborOffsets:   offsets,
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *Grid) Passable(p Point) bool {
	return gg.InBounds(p) && gg.CellValues[p.Y][p.X] >= gg.PassableThreshold
}

// Check returns ErrOutOfBounds when p lies outside the grid.
func (gg *Grid) Check(p Point) error {
	if !gg.InBounds(p) {
		return fmt.Errorf("%w: %s in a %d×%d grid", ErrOutOfBounds, p, gg.Width, gg.Height)
	}

	return nil
}

// step reports whether moving from p by d is allowed; diagonals may not
// squeeze between two walls.
func (gg *Grid) step(p Point, d [2]int) (Point, bool) {
	q := Point{X: p.X + d[0], Y: p.Y + d[1]}
	if !gg.Passable(q) {
		return q, false
	}
	if d[0] != 0 && d[1] != 0 {
		if !gg.Passable(Point{X: p.X + d[0], Y: p.Y}) || !gg.Passable(Point{X: p.X, Y: p.Y + d[1]}) {
			return q, false
		}
	}

	return q, true
}

// ToGraph converts the grid into a directed core.Graph keyed by Point.
// Every cell becomes a node, walls included, so any in-bounds Point is a
// valid query endpoint. The arc p→q costs CellValues[q.Y][q.X], multiplied
// by √2 for a diagonal step.
// Complexity: O(W×H×d) time and memory.
func (gg *Grid) ToGraph() (*core.Graph[Point], error) {
	g := core.NewGraph[Point](core.WithCapacity(gg.Width * gg.Height))
	// 1) Add all cells in row-major order.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g.AddNode(Point{X: x, Y: y})
		}
	}
	// 2) Add arcs out of every passable cell.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{X: x, Y: y}
			if !gg.Passable(p) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				q, ok := gg.step(p, d)
				if !ok {
					continue
				}
				w := float64(gg.CellValues[q.Y][q.X])
				if d[0] != 0 && d[1] != 0 {
					w *= math.Sqrt2
				}
				if err := g.AddEdge(p, q, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps p to a row-major index: y*Width + x.
func (gg *Grid) index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Parse reads a grid document: one row per line, cells separated by spaces
// or commas. Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool { return c == ' ' || c == '\t' || c == ',' })
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, cell %d: %q", ErrMalformedGrid, line, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return rows, nil
}

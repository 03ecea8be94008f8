// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrMalformedGrid indicates an unparsable grid document or point.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate and the node identifier of ToGraph.
type Point struct {
	X, Y int
}

// String formats p as "x,y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParsePoint reads "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q (want x,y)", ErrMalformedGrid, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: point %q (want x,y)", ErrMalformedGrid, s)
	}

	return Point{X: x, Y: y}, nil
}

// GridOptions contains tunable parameters for grid routing.
type GridOptions struct {
	// PassableThreshold is the minimum cell value that can be entered.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (0 and below are walls), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// Grid treats a 2D integer cost map as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
type Grid struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int
	neighborOffsets   [][2]int
}

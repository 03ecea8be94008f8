// SPDX-License-Identifier: MIT

package gridgraph

// Components labels the passable regions of a Grid.
type Components struct {
	grid   *Grid
	labels []int // row-major; -1 for walls
	Count  int
}

// ConnectedComponents finds all contiguous regions of passable cells,
// according to gg.Conn connectivity and the no-corner-cutting rule.
// Regions are numbered in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func (gg *Grid) ConnectedComponents() *Components {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	c := &Components{grid: gg, labels: labels}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p0 := Point{X: x, Y: y}
			if !gg.Passable(p0) || labels[gg.index(p0)] >= 0 {
				continue
			}
			// BFS to collect component
			labels[gg.index(p0)] = c.Count
			queue := []Point{p0}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range gg.neighborOffsets {
					v, ok := gg.step(u, d)
					if !ok || labels[gg.index(v)] >= 0 {
						continue
					}
					labels[gg.index(v)] = c.Count
					queue = append(queue, v)
				}
			}
			c.Count++
		}
	}

	return c
}

// Label returns the region of p, or -1 for walls and out-of-bounds points.
func (c *Components) Label(p Point) int {
	if !c.grid.InBounds(p) {
		return -1
	}

	return c.labels[c.grid.index(p)]
}

// Connected reports whether a and b are passable cells of the same region.
// Every arc of ToGraph has a reverse arc, so this is exact reachability.
func (c *Components) Connected(a, b Point) bool {
	la := c.Label(a)

	return la >= 0 && la == c.Label(b)
}

// Sizes returns the number of cells in each region, indexed by label.
func (c *Components) Sizes() []int {
	sizes := make([]int, c.Count)
	for _, l := range c.labels {
		if l >= 0 {
			sizes[l]++
		}
	}

	return sizes
}

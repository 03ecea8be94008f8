// SPDX-License-Identifier: MIT

package dijkstra

// Tree is the outcome of a full single-source run: the distance to and a
// shortest path towards every node reachable from Source.
// A Tree is immutable and safe for concurrent reads.
type Tree[K comparable] struct {
	Source K

	dist  map[K]float64
	prev  map[K]K
	order []K
	stats Stats
}

// ShortestPathTree runs the engine from source without a target, settling
// every reachable node (within MaxDistance, when set).
//
// Errors are the same as FindPath's.
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPathTree[K comparable](g Graph[K], source K, opts ...Option) (*Tree[K], error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, err
	}
	var none K
	if err = r.process(none, false); err != nil {
		return nil, err
	}

	// Relaxation never records a distance above the cap, so once the
	// frontier drains every entry of r.dist is final.
	return &Tree[K]{
		Source: source,
		dist:   r.dist,
		prev:   r.prev,
		order:  r.order,
		stats:  r.stats,
	}, nil
}

// DistanceTo returns the shortest distance from Source to v, or +Inf.
func (t *Tree[K]) DistanceTo(v K) float64 {
	if d, ok := t.dist[v]; ok {
		return d
	}

	return Inf
}

// PathTo returns the Result for Source → v, using the tree's Stats.
func (t *Tree[K]) PathTo(v K) Result[K] {
	d, ok := t.dist[v]
	if !ok {
		return Result[K]{Distance: Inf, Stats: t.stats}
	}
	r := runner[K]{prev: t.prev}

	return Result[K]{Path: r.pathTo(v), Distance: d, Stats: t.stats}
}

// Reached returns the settled nodes in non-decreasing distance order,
// Source first.
func (t *Tree[K]) Reached() []K {
	out := make([]K, len(t.order))
	copy(out, t.order)

	return out
}

// Stats reports the work done by the run.
func (t *Tree[K]) Stats() Stats { return t.stats }

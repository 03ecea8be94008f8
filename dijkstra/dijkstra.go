// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/frontier"
)

// ctxPollEvery is the number of extractions between two context checks.
const ctxPollEvery = 64

// FindPath computes a lowest-cost path from start to end in g.
//
// start does not have to be a declared node: it is seeded with distance 0
// regardless, and simply reaches nothing if it has no out-edges. For
// start == end the result is the single-node path with distance 0.
//
// Returns:
//   - Result with the path (start … end) and its total weight, or an empty
//     path and +Inf when end is unreachable (err == nil in that case).
//   - err for invalid input only: ErrNilGraph, ErrInvalidWeight,
//     ErrOptionViolation, or the context's error.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func FindPath[K comparable](g Graph[K], start, end K, opts ...Option) (Result[K], error) {
	r, err := newRunner(g, start, opts)
	if err != nil {
		return Result[K]{Distance: Inf}, err
	}

	// 1) Run until end is extracted or the frontier drains.
	if err = r.process(end, true); err != nil {
		return Result[K]{Distance: Inf, Stats: r.stats}, err
	}

	// 2) Unreachable: no predecessor recorded and end is not the seed itself.
	if _, ok := r.prev[end]; !ok && end != start {
		return Result[K]{Distance: Inf, Stats: r.stats}, nil
	}

	// 3) Walk predecessors back to start.
	return Result[K]{
		Path:     r.pathTo(end),
		Distance: r.distance(end),
		Stats:    r.stats,
	}, nil
}

// runner holds the mutable state of a single query.
type runner[K comparable] struct {
	g      Graph[K]
	cfg    Options
	source K
	dist   map[K]float64 // best known distance; missing means +Inf
	prev   map[K]K       // predecessor on the best known path; missing means none
	pq     *frontier.Frontier[K]
	order  []K // settled nodes in extraction order (trees only)
	stats  Stats
}

// newRunner validates inputs and options and seeds the frontier with source.
func newRunner[K comparable](g Graph[K], source K, opts []Option) (*runner[K], error) {
	// 1) Reject nil graphs, including a typed nil *core.Graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph[K]); ok && cg == nil {
		return nil, ErrNilGraph
	}

	// 2) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Pre-scan weights so a bad graph fails before any work is done.
	nodes := g.NodeList()
	if !cfg.TrustedWeights {
		if err := scanWeights(g, nodes); err != nil {
			return nil, err
		}
	}

	// 4) Fresh per-query tables, sized for the declared node set.
	r := &runner[K]{
		g:      g,
		cfg:    cfg,
		source: source,
		dist:   make(map[K]float64, len(nodes)),
		prev:   make(map[K]K, len(nodes)),
		pq:     frontier.New[K](len(nodes)),
	}
	r.dist[source] = 0
	r.pq.Insert(source, 0)
	r.stats.Pushed++

	return r, nil
}

// ValidateWeights runs the query pre-scan on its own: every out-edge of every
// node g lists must carry a valid weight. A caller that validates once may
// then query with WithTrustedWeights.
func ValidateWeights[K comparable](g Graph[K]) error {
	if g == nil {
		return ErrNilGraph
	}
	if cg, ok := g.(*core.Graph[K]); ok && cg == nil {
		return ErrNilGraph
	}

	return scanWeights(g, g.NodeList())
}

// scanWeights checks every out-edge of every listed node.
func scanWeights[K comparable](g Graph[K], nodes []K) error {
	for _, u := range nodes {
		for _, e := range g.OutEdges(u) {
			if !core.ValidWeight(e.Weight) {
				return fmt.Errorf("%w: edge %v→%v weight=%g", ErrInvalidWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}

// distance returns the recorded distance of v, or +Inf.
func (r *runner[K]) distance(v K) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return Inf
}

// process is the main loop. With hasTarget it returns as soon as target is
// extracted; otherwise it drains the frontier. Extraction order is
// recorded only for full runs.
func (r *runner[K]) process(target K, hasTarget bool) error {
	ctx := r.cfg.Ctx
	poll := ctx.Done() != nil

	for {
		// 1) Honor the caller's deadline between extractions.
		if poll && r.stats.Extracted%ctxPollEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("dijkstra: query abandoned: %w", err)
			}
		}

		u, d, ok := r.pq.ExtractMin()
		if !ok {
			return nil
		}
		r.stats.Extracted++

		// 2) Lazy deletion: a cheaper entry for u was already processed.
		if d > r.distance(u) {
			r.stats.Stale++
			continue
		}

		// 3) The cheapest pending entry is past the cap; so is everything after it.
		if d > r.cfg.MaxDistance {
			return nil
		}

		// 4) First extraction of the target is final under non-negative weights.
		if hasTarget && u == target {
			return nil
		}
		if !hasTarget {
			r.order = append(r.order, u)
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner[K]) relax(u K, du float64) error {
	for _, e := range r.g.OutEdges(u) {
		w := e.Weight
		if !core.ValidWeight(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrInvalidWeight, u, e.To, w)
		}
		if w >= r.cfg.InfEdgeThreshold {
			continue
		}

		cand := du + w
		if cand > r.cfg.MaxDistance || cand >= r.distance(e.To) {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u
		r.pq.Insert(e.To, cand)
		r.stats.Relaxed++
		r.stats.Pushed++
	}

	return nil
}

// pathTo follows predecessor links from v back to the node without one
// and returns the forward path. v must be reached.
func (r *runner[K]) pathTo(v K) []K {
	path := []K{v}
	for cur := v; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

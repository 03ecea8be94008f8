// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// FromAdjacency builds a Graph from the raw shape, rejecting anything the
// engine's preconditions forbid. Every problem found is reported in the
// returned error; errors.Is matches ErrMalformedGraph and ErrInvalidWeight.
//
// Rules:
//   - every key of a.Edges and every edge target must appear in a.Nodes;
//   - every weight must satisfy ValidWeight;
//   - duplicate entries in a.Nodes are collapsed (the node set is a set).
//
// Edges are inserted grouped by source in a.Nodes order, so the result is
// deterministic even though a.Edges is a map.
//
// Complexity: O(V + E).
func FromAdjacency[K comparable](a Adjacency[K], opts ...GraphOption) (*Graph[K], error) {
	g := NewGraph[K](append([]GraphOption{WithCapacity(len(a.Nodes))}, opts...)...)
	for _, id := range a.Nodes {
		g.addNodeLocked(id)
	}

	var result *multierror.Error
	for from := range a.Edges {
		if _, ok := g.nodes[from]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: edges listed for unknown node %v", ErrMalformedGraph, from))
		}
	}
	for _, from := range g.order {
		for i, e := range a.Edges[from] {
			if _, ok := g.nodes[e.To]; !ok {
				result = multierror.Append(result, fmt.Errorf("%w: edge %v→%v (#%d) targets unknown node", ErrMalformedGraph, from, e.To, i))
			}
			if !ValidWeight(e.Weight) {
				result = multierror.Append(result, fmt.Errorf("%w: edge %v→%v weight=%g", ErrInvalidWeight, from, e.To, e.Weight))
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	for _, from := range g.order {
		for _, e := range a.Edges[from] {
			// Weights were validated above.
			_ = g.AddEdge(from, e.To, e.Weight)
		}
	}

	return g, nil
}

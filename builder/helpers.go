// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// helpers.go - shared edge/vertex emission used by every constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// addNodes inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addNodes(g *core.Graph[string], cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}

	return ids
}

// addEdge draws one weight from cfg.weightFn and inserts u→v.
// A weight the graph rejects is reported as ErrConstructFailed.
func addEdge(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}

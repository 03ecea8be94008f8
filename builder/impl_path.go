// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 1 nodes, edges i→i+1 for i in [0, n-2].
//   - Cycle: n ≥ 3 nodes, the Path edges plus (n-1)→0.
//   - In undirected graphs the core mirrors each edge; no extra emission here.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path over n nodes.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, addNodes(g, cfg, n))
	}
}

// Cycle returns a Constructor that builds a simple cycle over n nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, cfg, n)
		if err := chain(g, cfg, methodCycle, ids); err != nil {
			return err
		}

		return addEdge(g, cfg, methodCycle, ids[n-1], ids[0])
	}
}

// chain links consecutive ids.
func chain(g *core.Graph[string], cfg builderConfig, method string, ids []string) error {
	for i := 0; i+1 < len(ids); i++ {
		if err := addEdge(g, cfg, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}

	return nil
}

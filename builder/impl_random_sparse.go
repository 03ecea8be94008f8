// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor (Erdős–Rényi G(n, p)).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - Directed graphs: each ordered pair (i, j), i ≠ j, gets i→j with probability p.
//     Undirected graphs: each unordered pair i<j is sampled once.
//   - WithSeed is required when 0 < p < 1.
//   - Pair order: i ascending, then j ascending, so a fixed seed yields a fixed graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes first so isolated ones still exist.
		ids := addNodes(g, cfg, n)
		directed := g.Directed()

		// 3) Sample pairs in a fixed order.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}

			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

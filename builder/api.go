// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return the sentinels from errors.go.

// Package builder generates deterministic weighted graphs (paths, cycles,
// grids, complete graphs, random sparse graphs) for fixtures, benchmarks
// and the `generate` command.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a Graph with gopts, resolves bopts and applies every
// constructor in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

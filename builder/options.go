// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - builder configuration and its functional options.
//
// Deterministic defaults:
//   - idFn     = "<prefix><index>" with an empty prefix ("0","1",...)
//   - rng      = nil (stochastic constructors fail with ErrNeedRandSource)
//   - weightFn = DefaultWeightFn (constant 1)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults, later options winning.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed installs a deterministic RNG for stochastic constructors and weight functions.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithIDPrefix names nodes "<prefix><index>", e.g. WithIDPrefix("v") gives "v0","v1",...
// Grid keeps its own "r,c" scheme.
func WithIDPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) string { return prefix + strconv.Itoa(i) }
	}
}

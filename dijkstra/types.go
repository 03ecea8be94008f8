// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidWeight indicates a negative or NaN edge weight. It is the
	// same sentinel as core.ErrInvalidWeight.
	ErrInvalidWeight = core.ErrInvalidWeight

	// ErrOptionViolation indicates an option was given an out-of-range value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Inf is the distance reported for unreachable nodes.
var Inf = math.Inf(1)

// Graph is the read-only view the engine needs. NodeList is only used by
// the weight pre-scan; OutEdges is called once per settled node.
//
// Both *core.Graph and core.Adjacency satisfy it.
type Graph[K comparable] interface {
	NodeList() []K
	OutEdges(id K) []core.Edge[K]
}

// Options configures one query.
type Options struct {
	// Ctx is polled between extractions; nil means context.Background().
	Ctx context.Context

	// MaxDistance stops exploration beyond this cost. Must be ≥ 0. Default +Inf.
	MaxDistance float64

	// InfEdgeThreshold treats edges with weight ≥ threshold as impassable.
	// Must be > 0. Default +Inf, which leaves only +Inf edges impassable.
	InfEdgeThreshold float64

	// TrustedWeights skips the O(E) weight pre-scan.
	TrustedWeights bool

	// internal error recorded during option parsing
	err error
}

// Option configures a query via functional arguments. Invalid values are
// recorded and surface as ErrOptionViolation when the query starts.
type Option func(*Options)

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}

// WithContext lets the caller bound the query with a deadline or cancel it.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance stops settling nodes whose distance would exceed d.
// Targets farther than d are reported unreachable.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold skips every edge whose weight is ≥ threshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%g)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithTrustedWeights skips the upfront weight scan. Use it for graphs whose
// weights were already validated, such as any *core.Graph. Weights met
// during relaxation are still checked.
func WithTrustedWeights() Option {
	return func(o *Options) { o.TrustedWeights = true }
}

// Stats counts the work performed by one query.
type Stats struct {
	Pushed    int // frontier insertions, the seed included
	Extracted int // frontier extractions, stale ones included
	Stale     int // extractions discarded because a cheaper entry was already processed
	Relaxed   int // strict improvements of a recorded distance
}

// Result is the answer to one start → end query.
//
// Path runs from start to end inclusive and is empty when end is
// unreachable; Distance is then +Inf.
type Result[K comparable] struct {
	Path     []K
	Distance float64
	Stats    Stats
}

// Reachable reports whether a path was found.
func (r Result[K]) Reachable() bool {
	return len(r.Path) > 0
}

// Hops returns the number of edges on the path, or -1 when unreachable.
func (r Result[K]) Hops() int {
	return len(r.Path) - 1
}

// Package batch answers many independent routing queries concurrently over one graph.
package batch

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/graphio"
	"github.com/katalvlaran/lvroute/internal/metrics"
)

// Outcome is the answer to one query. Err is set for invalid input or an
// abandoned query; an unreachable target is a Result, not an error.
type Outcome struct {
	Query    graphio.Query
	Result   dijkstra.Result[string]
	Err      error
	Duration time.Duration
}

// Summary counts outcomes by kind.
type Summary struct {
	Found       int
	Unreachable int
	Failed      int
}

// Runner fans queries out to a bounded worker pool. The zero value runs
// one worker without a per-query timeout.
type Runner struct {
	Workers int
	Timeout time.Duration     // per query; zero means none
	Options []dijkstra.Option // applied to every query
	Logger  *zap.Logger
	Metrics *metrics.Recorder
}

// Run answers every query against g and returns the outcomes in input order.
// g must not be mutated while Run is in progress. The error is non-nil only
// when ctx ended before all queries finished; the outcomes are still returned.
func (r *Runner) Run(ctx context.Context, g dijkstra.Graph[string], queries []graphio.Query) ([]Outcome, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	logger.Info("batch started", zap.Int("queries", len(queries)), zap.Int("workers", workers))
	started := time.Now()
	out := make([]Outcome, len(queries))

	// Weights are checked once per batch, not once per query. A core.Graph
	// already rejected bad weights on insert.
	if _, ok := g.(*core.Graph[string]); !ok {
		if err := dijkstra.ValidateWeights(g); err != nil {
			logger.Warn("graph rejected", zap.Error(err))
			for i, q := range queries {
				out[i] = Outcome{Query: q, Result: dijkstra.Result[string]{Distance: dijkstra.Inf}, Err: err}
				r.Metrics.Observe(dijkstra.Stats{}, metrics.OutcomeError, 0)
			}

			return out, ctx.Err()
		}
	}
	opts := append([]dijkstra.Option(nil), r.Options...)
	opts = append(opts, dijkstra.WithTrustedWeights())
	opts = opts[:len(opts):len(opts)] // workers append their own context option

	p := pool.New().WithMaxGoroutines(workers)
	for i, q := range queries {
		p.Go(func() {
			out[i] = r.runOne(ctx, g, q, opts)
			if out[i].Err != nil {
				logger.Warn("query failed",
					zap.Int("index", i),
					zap.String("from", q.From),
					zap.String("to", q.To),
					zap.Error(out[i].Err))
			}
		})
	}
	p.Wait()

	s := Summarize(out)
	logger.Info("batch finished",
		zap.Int("found", s.Found),
		zap.Int("unreachable", s.Unreachable),
		zap.Int("failed", s.Failed),
		zap.Duration("elapsed", time.Since(started)))

	return out, ctx.Err()
}

func (r *Runner) runOne(ctx context.Context, g dijkstra.Graph[string], q graphio.Query, opts []dijkstra.Option) Outcome {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := dijkstra.FindPath(g, q.From, q.To, append(opts, dijkstra.WithContext(ctx))...)
	dur := time.Since(start)
	r.Metrics.Observe(res.Stats, metrics.Outcome(res, err), dur)

	return Outcome{Query: q, Result: res, Err: err, Duration: dur}
}

// Summarize counts found, unreachable and failed outcomes.
func Summarize(outs []Outcome) Summary {
	var s Summary
	for _, o := range outs {
		switch {
		case o.Err != nil:
			s.Failed++
		case o.Result.Reachable():
			s.Found++
		default:
			s.Unreachable++
		}
	}

	return s
}

// Package metrics exposes Prometheus instrumentation for shortest-path queries.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvroute/dijkstra"
)

const labelOutcome = "outcome"

// Query outcomes.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Recorder owns a private registry so several recorders (one per test, one
// per server) never collide on registration.
type Recorder struct {
	registry    *prometheus.Registry
	queries     *prometheus.CounterVec
	duration    prometheus.Histogram
	extractions prometheus.Counter
	stale       prometheus.Counter
	relaxations prometheus.Counter
}

// NewRecorder registers the query collectors plus the Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvroute_queries_total",
			Help: "The number of shortest-path queries by outcome",
		}, []string{labelOutcome}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvroute_query_duration_seconds",
			Help:    "The time it takes to answer one shortest-path query",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		extractions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvroute_frontier_extractions_total",
			Help: "The number of entries extracted from the frontier",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvroute_frontier_stale_total",
			Help: "The number of extracted entries skipped as stale",
		}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvroute_relaxations_total",
			Help: "The number of successful edge relaxations",
		}),
	}
	for _, o := range []string{OutcomeFound, OutcomeUnreachable, OutcomeError} {
		r.queries.WithLabelValues(o)
	}

	r.registry.MustRegister(
		r.queries,
		r.duration,
		r.extractions,
		r.stale,
		r.relaxations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Outcome classifies a finished query.
func Outcome[K comparable](res dijkstra.Result[K], err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case res.Reachable():
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}

// Observe records one finished query. A nil Recorder is a no-op.
func (r *Recorder) Observe(stats dijkstra.Stats, outcome string, dur time.Duration) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(outcome).Inc()
	r.duration.Observe(dur.Seconds())
	r.extractions.Add(float64(stats.Extracted))
	r.stale.Add(float64(stats.Stale))
	r.relaxations.Add(float64(stats.Relaxed))
}

// Registry returns the registry backing r.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

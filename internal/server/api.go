package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/internal/metrics"
)

// RouteResponse is the body of a successful /v1/route call.
// Distance is null when the target is unreachable.
type RouteResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Path      []string `json:"path"`
	Distance  *float64 `json:"distance"`
	Reachable bool     `json:"reachable"`
	Hops      int      `json:"hops"`
}

// GraphResponse is the body of /v1/graph.
type GraphResponse struct {
	Directed bool `json:"directed"`
	Nodes    int  `json:"nodes"`
	Edges    int  `json:"edges"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) metricsHandler() http.Handler {
	if s.metrics == nil {
		return http.NotFoundHandler()
	}
	return s.metrics.Handler()
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GraphResponse{
		Directed: s.graph.Directed(),
		Nodes:    s.graph.NodeCount(),
		Edges:    s.graph.EdgeCount(),
	})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	opts := s.opts
	if raw := q.Get("max_distance"); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "max_distance must be a number")
			return
		}
		opts = append(opts, dijkstra.WithMaxDistance(d))
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	res, err := dijkstra.FindPath(s.graph, from, to, append(opts, dijkstra.WithContext(ctx))...)
	s.metrics.Observe(res.Stats, metrics.Outcome(res, err), time.Since(start))

	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		s.logger.Warn("route failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err))
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, NewRouteResponse(from, to, res))
}

// NewRouteResponse converts an engine result into its JSON form.
func NewRouteResponse(from, to string, res dijkstra.Result[string]) RouteResponse {
	out := RouteResponse{
		From:      from,
		To:        to,
		Path:      res.Path,
		Reachable: res.Reachable(),
		Hops:      res.Hops(),
	}
	if out.Path == nil {
		out.Path = []string{}
	}
	if out.Reachable {
		d := res.Distance
		out.Distance = &d
	}

	return out
}

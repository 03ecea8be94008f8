package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/graphio"
	"github.com/katalvlaran/lvroute/gridgraph"
	"github.com/katalvlaran/lvroute/internal/batch"
	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/katalvlaran/lvroute/internal/server"
)

// loadGraph reads the --graph document and logs its size.
func (a *app) loadGraph(path string) (*core.Graph[string], error) {
	if path == "" {
		return nil, errors.New("--graph is required")
	}
	g, err := graphio.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded",
		zap.String("path", path),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// queryOptions merges config limits with a --max-distance override.
func (a *app) queryOptions(cmd *cobra.Command, maxDistance float64) []dijkstra.Option {
	opts := append(a.cfg.Query.Options(), dijkstra.WithTrustedWeights(), dijkstra.WithContext(cmd.Context()))
	if cmd.Flags().Changed("max-distance") {
		opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
	}

	return opts
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatRoute renders a result as "A → B → D (distance 2, 2 hops)".
func formatRoute(from, to string, res dijkstra.Result[string]) string {
	if !res.Reachable() {
		return fmt.Sprintf("no route from %s to %s", from, to)
	}

	return fmt.Sprintf("%s (distance %g, %d hops)", strings.Join(res.Path, " → "), res.Distance, res.Hops())
}

// --- route ---

func (a *app) routeCmd() *cobra.Command {
	var graphPath, from, to string
	var asJSON bool
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the lowest-cost path between two nodes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}

			res, err := dijkstra.FindPath(g, from, to, a.queryOptions(cmd, maxDistance)...)
			if err != nil {
				return err
			}
			a.logger.Debug("route computed",
				zap.Int("extracted", res.Stats.Extracted),
				zap.Int("stale", res.Stats.Stale),
				zap.Int("relaxed", res.Stats.Relaxed))

			if asJSON {
				return printJSON(cmd.OutOrStdout(), server.NewRouteResponse(from, to, res))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatRoute(from, to, res))
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&from, "from", "", "start node")
	cmd.Flags().StringVar(&to, "to", "", "target node")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "ignore routes longer than this")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// --- tree ---

func (a *app) treeCmd() *cobra.Command {
	var graphPath, from string
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the distance and path from one node to every reachable node",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}

			tree, err := dijkstra.ShortestPathTree(g, from, a.queryOptions(cmd, maxDistance)...)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NODE\tDISTANCE\tPATH")
			for _, v := range tree.Reached() {
				fmt.Fprintf(w, "%s\t%g\t%s\n", v, tree.DistanceTo(v), strings.Join(tree.PathTo(v).Path, " → "))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d nodes reachable\n", len(tree.Reached()), g.NodeCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&from, "from", "", "source node")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "stop settling nodes beyond this distance")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// --- batch ---

// batchLine is one result of "batch --json".
type batchLine struct {
	server.RouteResponse
	Error string `json:"error,omitempty"`
}

func (a *app) batchCmd() *cobra.Command {
	var graphPath, queriesPath string
	var workers int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer a file of queries concurrently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}
			queries, err := graphio.LoadQueries(queriesPath)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			r := &batch.Runner{
				Workers: workers,
				Timeout: a.cfg.Batch.Timeout,
				Options: a.cfg.Query.Options(),
				Logger:  a.logger,
			}
			outs, err := r.Run(cmd.Context(), g, queries)
			if err != nil {
				return err
			}

			if asJSON {
				lines := make([]batchLine, len(outs))
				for i, o := range outs {
					lines[i].RouteResponse = server.NewRouteResponse(o.Query.From, o.Query.To, o.Result)
					if o.Err != nil {
						lines[i].Error = o.Err.Error()
					}
				}
				return printJSON(cmd.OutOrStdout(), lines)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tTO\tRESULT")
			for _, o := range outs {
				result := formatRoute(o.Query.From, o.Query.To, o.Result)
				if o.Err != nil {
					result = "error: " + o.Err.Error()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", o.Query.From, o.Query.To, result)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			s := batch.Summarize(outs)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d found, %d unreachable, %d failed\n", s.Found, s.Unreachable, s.Failed)
			if s.Failed > 0 {
				return fmt.Errorf("%d of %d queries failed", s.Failed, len(outs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&queriesPath, "queries", "", "query document (.yaml, .yml or .json)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent queries (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the results as JSON")
	_ = cmd.MarkFlagRequired("queries")
	return cmd
}

// --- serve ---

func (a *app) serveCmd() *cobra.Command {
	var graphPath, listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routing queries over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graphPath)
			if err != nil {
				return err
			}

			cfg := a.cfg.Server
			if listen != "" {
				cfg.Listen = listen
			}
			srv := server.New(g, cfg, a.cfg.Query.Options(), a.logger, metrics.NewRecorder())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "graph document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config or :8080)")
	return cmd
}

// --- generate ---

func (a *app) generateCmd() *cobra.Command {
	var kind, out, format, prefix string
	var n, cols int
	var p float64
	var seed int64
	var undirected bool
	var minWeight, maxWeight int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph document (grid, path, cycle, complete, random)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cons builder.Constructor
			switch kind {
			case "grid":
				if cols <= 0 {
					cols = n
				}
				cons = builder.Grid(n, cols)
			case "path":
				cons = builder.Path(n)
			case "cycle":
				cons = builder.Cycle(n)
			case "complete":
				cons = builder.Complete(n)
			case "random":
				cons = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("invalid --kind %q (use: grid, path, cycle, complete, random)", kind)
			}

			bopts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithIDPrefix(prefix)}
			if cmd.Flags().Changed("min-weight") || cmd.Flags().Changed("max-weight") {
				if minWeight < 0 || maxWeight < minWeight {
					return fmt.Errorf("invalid weight range [%d, %d] (need 0 ≤ min ≤ max)", minWeight, maxWeight)
				}
				bopts = append(bopts, builder.WithWeightFn(builder.IntWeightFn(minWeight, maxWeight)))
			}
			var gopts []core.GraphOption
			if undirected {
				gopts = append(gopts, core.WithUndirected())
			}

			g, err := builder.BuildGraph(gopts, bopts, cons)
			if err != nil {
				return err
			}

			if out != "" && !cmd.Flags().Changed("format") {
				if f, err := graphio.FormatFromPath(out); err == nil {
					format = string(f)
				}
			}
			docFormat, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == "" {
				err = graphio.Encode(cmd.OutOrStdout(), g, docFormat)
			} else {
				err = writeGraphFile(out, g, docFormat)
			}
			if err != nil {
				return err
			}
			a.logger.Info("graph generated",
				zap.String("kind", kind),
				zap.Int("nodes", g.NodeCount()),
				zap.Int("edges", g.EdgeCount()))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "grid", "topology: grid, path, cycle, complete, random")
	cmd.Flags().IntVar(&n, "n", 10, "number of vertices (rows for grid)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (default: n)")
	cmd.Flags().Float64Var(&p, "p", 0.1, "edge probability for random graphs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "generate an undirected graph")
	cmd.Flags().IntVar(&minWeight, "min-weight", 1, "lower bound of random integer weights")
	cmd.Flags().IntVar(&maxWeight, "max-weight", 1, "upper bound of random integer weights")
	cmd.Flags().StringVar(&prefix, "prefix", "", "vertex id prefix")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml, json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// writeGraphFile encodes g into path; a failed Close is returned.
func writeGraphFile(path string, g *core.Graph[string], format graphio.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graphio.Encode(f, g, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// --- terrain ---

func (a *app) terrainCmd() *cobra.Command {
	var gridPath, from, to string
	var diagonal, asJSON bool
	var threshold int

	cmd := &cobra.Command{
		Use:   "terrain",
		Short: "Route across a cost grid (one row of integer cell costs per line)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(gridPath)
			if err != nil {
				return err
			}
			rows, err := gridgraph.Parse(f)
			_ = f.Close()
			if err != nil {
				return err
			}

			opts := gridgraph.GridOptions{PassableThreshold: threshold, Conn: gridgraph.Conn4}
			if diagonal {
				opts.Conn = gridgraph.Conn8
			}
			gg, err := gridgraph.New(rows, opts)
			if err != nil {
				return err
			}

			src, err := gridgraph.ParsePoint(from)
			if err != nil {
				return err
			}
			dst, err := gridgraph.ParsePoint(to)
			if err != nil {
				return err
			}
			for _, p := range []gridgraph.Point{src, dst} {
				if err := gg.Check(p); err != nil {
					return err
				}
			}

			// Skip the search when the endpoints lie in different regions.
			var res dijkstra.Result[gridgraph.Point]
			comps := gg.ConnectedComponents()
			if src == dst || comps.Connected(src, dst) {
				g, err := gg.ToGraph()
				if err != nil {
					return err
				}
				qopts := append(a.cfg.Query.Options(), dijkstra.WithTrustedWeights(), dijkstra.WithContext(cmd.Context()))
				if res, err = dijkstra.FindPath(g, src, dst, qopts...); err != nil {
					return err
				}
			} else {
				res.Distance = dijkstra.Inf
				a.logger.Debug("endpoints in different regions",
					zap.Int("from_region", comps.Label(src)),
					zap.Int("to_region", comps.Label(dst)),
					zap.Int("regions", comps.Count))
			}

			strRes := dijkstra.Result[string]{Distance: res.Distance, Stats: res.Stats}
			for _, p := range res.Path {
				strRes.Path = append(strRes.Path, p.String())
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), server.NewRouteResponse(src.String(), dst.String(), strRes))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatRoute(src.String(), dst.String(), strRes))
			return nil
		},
	}

	cmd.Flags().StringVar(&gridPath, "grid", "", "grid document")
	cmd.Flags().StringVar(&from, "from", "", "start cell as x,y")
	cmd.Flags().StringVar(&to, "to", "", "target cell as x,y")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal steps (cost ×√2)")
	cmd.Flags().IntVar(&threshold, "passable", 1, "minimum cell value that can be entered")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

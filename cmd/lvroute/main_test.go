package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/graphio"
	"github.com/katalvlaran/lvroute/internal/server"
)

const roadsYAML = `
nodes: [A, B, C, D, E]
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: D, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: C, to: D, weight: 1}
`

// fixture writes a config, a graph and a query document into a temp dir.
func fixture(t *testing.T) (dir, cfg string) {
	t.Helper()
	dir = t.TempDir()
	cfg = filepath.Join(dir, "lvroute.yaml")
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	write("lvroute.yaml", "log:\n  level: error\n")
	write("roads.yaml", roadsYAML)
	write("queries.yaml", "queries:\n  - {from: A, to: D}\n  - {from: A, to: E}\n")

	return dir, cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestRouteCmd(t *testing.T) {
	dir, cfg := fixture(t)
	graph := filepath.Join(dir, "roads.yaml")

	out, err := run(t, "--config", cfg, "route", "--graph", graph, "--from", "A", "--to", "D")
	require.NoError(t, err)
	assert.Equal(t, "A → B → D (distance 2, 2 hops)\n", out)

	out, err = run(t, "--config", cfg, "route", "--graph", graph, "--from", "A", "--to", "E")
	require.NoError(t, err)
	assert.Equal(t, "no route from A to E\n", out)

	out, err = run(t, "--config", cfg, "route", "--graph", graph, "--from", "A", "--to", "D", "--json", "--max-distance", "1")
	require.NoError(t, err)
	var resp server.RouteResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Reachable)
	assert.Nil(t, resp.Distance)
}

func TestRouteCmd_Errors(t *testing.T) {
	dir, cfg := fixture(t)

	_, err := run(t, "--config", cfg, "route", "--from", "A", "--to", "D")
	assert.ErrorContains(t, err, "--graph is required")

	_, err = run(t, "--config", cfg, "route", "--graph", filepath.Join(dir, "roads.yaml"), "--from", "A")
	assert.Error(t, err, "--to is required")

	_, err = run(t, "--config", cfg, "--log-level", "shouty", "version")
	assert.Error(t, err)
}

func TestTreeCmd(t *testing.T) {
	dir, cfg := fixture(t)

	out, err := run(t, "--config", cfg, "tree", "--graph", filepath.Join(dir, "roads.yaml"), "--from", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "NODE  DISTANCE  PATH")
	assert.Contains(t, out, "A → B → D")
	assert.Contains(t, out, "4 of 5 nodes reachable")
}

func TestBatchCmd(t *testing.T) {
	dir, cfg := fixture(t)

	out, err := run(t, "--config", cfg, "batch",
		"--graph", filepath.Join(dir, "roads.yaml"),
		"--queries", filepath.Join(dir, "queries.yaml"),
		"--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "A → B → D (distance 2, 2 hops)")
	assert.Contains(t, out, "no route from A to E")
	assert.Contains(t, out, "1 found, 1 unreachable, 0 failed")

	out, err = run(t, "--config", cfg, "batch", "--json",
		"--graph", filepath.Join(dir, "roads.yaml"),
		"--queries", filepath.Join(dir, "queries.yaml"))
	require.NoError(t, err)
	var lines []batchLine
	require.NoError(t, json.Unmarshal([]byte(out), &lines))
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"A", "B", "D"}, lines[0].Path)
	assert.False(t, lines[1].Reachable)
}

func TestGenerateCmd(t *testing.T) {
	dir, cfg := fixture(t)
	out := filepath.Join(dir, "grid.json")

	_, err := run(t, "--config", cfg, "generate", "--kind", "grid", "--n", "3", "--cols", "4",
		"--min-weight", "1", "--max-weight", "5", "--seed", "7", "--out", out)
	require.NoError(t, err)

	g, err := graphio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	assert.Equal(t, 34, g.EdgeCount(), "17 links, both directions")

	stdout, err := run(t, "--config", cfg, "generate", "--kind", "path", "--n", "3", "--prefix", "p")
	require.NoError(t, err)
	assert.Contains(t, stdout, "- p0")

	_, err = run(t, "--config", cfg, "generate", "--kind", "star")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "generate", "--min-weight", "5", "--max-weight", "2")
	assert.Error(t, err)
}

func TestGenerateCmd_OutputErrors(t *testing.T) {
	dir, cfg := fixture(t)

	out := filepath.Join(dir, "bad.txt")
	_, err := run(t, "--config", cfg, "generate", "--kind", "path", "--n", "3", "--out", out, "--format", "toml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
	assert.NoFileExists(t, out, "nothing is created for an unknown format")

	_, err = run(t, "--config", cfg, "generate", "--kind", "path", "--n", "3", "--out", filepath.Join(dir, "missing", "g.yaml"))
	assert.Error(t, err)
}

func TestWriteGraphFile(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "path.yaml")
	require.NoError(t, writeGraphFile(path, g, graphio.FormatYAML))
	back, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	if _, err := os.Stat("/dev/full"); err == nil {
		assert.Error(t, writeGraphFile("/dev/full", g, graphio.FormatYAML))
	}
}

func TestVersionCmd(t *testing.T) {
	_, cfg := fixture(t)
	out, err := run(t, "--config", cfg, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvroute dev\n", out)
}

func TestTerrainCmd(t *testing.T) {
	dir, cfg := fixture(t)
	grid := filepath.Join(dir, "terrain.txt")
	require.NoError(t, os.WriteFile(grid, []byte("# ridge\n1 9 1 0 1\n1 9 1 0 1\n1 1 1 0 1\n"), 0o600))

	out, err := run(t, "--config", cfg, "terrain", "--grid", grid, "--from", "0,0", "--to", "2,0")
	require.NoError(t, err)
	assert.Equal(t, "0,0 → 0,1 → 0,2 → 1,2 → 2,2 → 2,1 → 2,0 (distance 6, 6 hops)\n", out)

	out, err = run(t, "--config", cfg, "terrain", "--grid", grid, "--from", "0,0", "--to", "4,0")
	require.NoError(t, err)
	assert.Equal(t, "no route from 0,0 to 4,0\n", out)

	_, err = run(t, "--config", cfg, "terrain", "--grid", grid, "--from", "0,0", "--to", "9,9")
	assert.ErrorContains(t, err, "out of bounds")
}

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/bfs"
	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dfs"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/internal/config"
	"github.com/katalvlaran/pathtrace/internal/render"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func generate(t *testing.T, nodes []string, seed int64) *core.Graph {
	t.Helper()
	d := config.Default()
	g, err := builder.Generate(nodes, d.ExtraEdgeProbability, d.Weights(), builder.WithSeed(seed))
	require.NoError(t, err)
	return g
}

func plain() *render.Renderer { return render.New(&bytes.Buffer{}, false) }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathtrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "generate")
	require.NoError(t, err)

	g := generate(t, builder.DefaultNodes(), builder.DefaultSeed)
	assert.Equal(t, plain().Graph(g)+"connected: true\n", out)
}

func TestGenerate_FlagsOverride(t *testing.T) {
	out, _, err := execute(t, "generate", "--nodes", "X,Y,Z", "--probability", "0", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "graph 3 vertices, 2 edges")
	assert.Contains(t, out, "nodes: X Y Z")
}

func TestGenerate_NodeCount(t *testing.T) {
	out, _, err := execute(t, "generate", "--node-count", "28", "--probability", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "graph 28 vertices, 27 edges")
	assert.Contains(t, out, "nodes: A AA AB B C")
}

func TestTrace(t *testing.T) {
	out, _, err := execute(t, "trace", "--start", "A", "--goal", "G", "--delay", "0")
	require.NoError(t, err)

	want, err := dijkstra.ShortestPath(generate(t, builder.DefaultNodes(), builder.DefaultSeed), "A", "G")
	require.NoError(t, err)
	require.True(t, want.Found)

	assert.Contains(t, out, "[0] start")
	assert.Contains(t, out, "visiting A")
	assert.Contains(t, out, "visiting G")
	assert.Contains(t, out, render.StatusLine(&want))
}

func TestTrace_Verify(t *testing.T) {
	out, _, err := execute(t, "trace", "--start", "B", "--goal", "E", "--delay", "0", "--verify")
	require.NoError(t, err)

	check, err := dfs.Cheapest(generate(t, builder.DefaultNodes(), builder.DefaultSeed), "B", "E")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("verified against %d simple paths\n", check.Explored))
}

func TestTrace_ConfigFileAndPrecedence(t *testing.T) {
	path := writeConfig(t, `
nodes: [P, Q, R, S]
seed: 5
step_delay: 0s
start: P
goal: S
`)
	nodes := []string{"P", "Q", "R", "S"}

	out, _, err := execute(t, "--config", path, "trace")
	require.NoError(t, err)
	want, err := dijkstra.ShortestPath(generate(t, nodes, 5), "P", "S")
	require.NoError(t, err)
	assert.Contains(t, out, render.StatusLine(&want))

	out, _, err = execute(t, "--config", path, "trace", "--seed", "9", "--goal", "R")
	require.NoError(t, err)
	want, err = dijkstra.ShortestPath(generate(t, nodes, 9), "P", "R")
	require.NoError(t, err)
	assert.Contains(t, out, render.StatusLine(&want))
}

func TestDistances(t *testing.T) {
	out, _, err := execute(t, "distances", "--source", "C")
	require.NoError(t, err)

	g := generate(t, builder.DefaultNodes(), builder.DefaultSeed)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("C"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	levels, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	assert.Equal(t, plain().Distances("C", dist, prev, levels.Depth), out)
}

func TestJSONLogsCarryRunID(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "info", "--log-format", "json", "generate")
	require.NoError(t, err)

	sc := bufio.NewScanner(strings.NewReader(stderr))
	require.True(t, sc.Scan(), "expected at least one log line")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
	assert.Equal(t, "graph generated", rec["msg"])
	assert.Equal(t, "generate", rec["command"])
	id, ok := rec["run_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestDefaultLevelIsQuiet(t *testing.T) {
	_, stderr, err := execute(t, "generate")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
		msg  string
	}{
		{name: "missing start", args: []string{"trace", "--goal", "A"}, is: errMissingEndpoint, msg: "--start"},
		{name: "missing goal", args: []string{"trace", "--start", "A"}, is: errMissingEndpoint, msg: "--goal"},
		{name: "missing source", args: []string{"distances"}, is: errMissingEndpoint, msg: "--source"},
		{name: "unknown start", args: []string{"trace", "--start", "Z", "--goal", "A"}, is: config.ErrInvalidConfig, msg: `"Z"`},
		{name: "nodes and node count", args: []string{"generate", "--nodes", "A,B", "--node-count", "3"}, is: errNodeFlags},
		{name: "one node", args: []string{"generate", "--node-count", "1"}, is: config.ErrInvalidConfig},
		{name: "bad probability", args: []string{"generate", "--probability", "2"}, is: config.ErrInvalidConfig},
		{name: "inverted weights", args: []string{"generate", "--weight-min", "5", "--weight-max", "2"}, is: config.ErrInvalidConfig},
		{name: "missing config", args: []string{"--config", "does-not-exist.yaml", "generate"}, is: fs.ErrNotExist},
		{name: "bad log level", args: []string{"--log-level", "loud", "generate"}, msg: "unknown level"},
		{name: "bad log format", args: []string{"--log-format", "xml", "generate"}, msg: "unknown format"},
		{name: "extra args", args: []string{"generate", "now"}, msg: "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

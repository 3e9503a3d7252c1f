package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dfs"
)

// buildChain creates a directed chain graph of length n: N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 0)
		require.NoError(t, err)
	}
	return g
}

// buildDiamond creates the undirected weighted diamond
// A—B(1), A—C(4), B—D(5), C—D(1), B—C(1).
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"A", "B", 1}, {"A", "C", 4}, {"B", "D", 5}, {"C", "D", 1}, {"B", "C", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_Chain(t *testing.T) {
	g := buildChain(t, 5)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N4", "N3", "N2", "N1", "N0"}, res.Order)
	assert.Equal(t, 4, res.Depth["N4"])
	assert.Equal(t, "N3", res.Parent["N4"])

	// Directed edges are not walked backwards.
	res, err = dfs.DFS(g, "N2")
	require.NoError(t, err)
	assert.Equal(t, []string{"N4", "N3", "N2"}, res.Order)
	assert.False(t, res.Visited["N0"])
}

func TestDFS_UndirectedUsesInsertionOrder(t *testing.T) {
	res, err := dfs.DFS(buildDiamond(t), "A")
	require.NoError(t, err)
	// A→B (first edge of A), B→D (B's first unvisited edge), D→C.
	assert.Equal(t, []string{"C", "D", "B", "A"}, res.Order)
	assert.Equal(t, map[string]string{"B": "A", "D": "B", "C": "D"}, res.Parent)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 5)
	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0"}, res.Order)
	assert.False(t, res.Visited["N3"])

	res, err = dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	res, err := dfs.DFS(buildDiamond(t), "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "D"
	}))
	require.NoError(t, err)
	assert.False(t, res.Visited["D"])
	assert.True(t, res.Visited["C"])
	assert.Positive(t, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("E"))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D", "C", "E"}, res.Order)
	assert.Len(t, res.Visited, 5)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []string
	res, err := dfs.DFS(buildChain(t, 3), "N0",
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, pre)
	assert.Equal(t, res.Order, post)

	boom := errors.New("boom")
	res, err = dfs.DFS(buildChain(t, 3), "N0",
		dfs.WithOnExit(func(id string) error {
			if id == "N1" {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(t, 3), "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalkSimplePaths_Diamond(t *testing.T) {
	type found struct {
		path string
		cost int64
	}
	var got []found
	err := dfs.WalkSimplePaths(buildDiamond(t), "A", "D", func(path []string, cost int64) bool {
		got = append(got, found{fmt.Sprint(path), cost})
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []found{
		{"[A B D]", 6},
		{"[A B C D]", 3},
		{"[A C D]", 5},
		{"[A C B D]", 10},
	}, got)
}

func TestWalkSimplePaths_StopAndDepth(t *testing.T) {
	n := 0
	err := dfs.WalkSimplePaths(buildDiamond(t), "A", "D", func([]string, int64) bool {
		n++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n = 0
	err = dfs.WalkSimplePaths(buildDiamond(t), "A", "D", func([]string, int64) bool {
		n++
		return true
	}, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "only A-B-D and A-C-D have two edges")
}

func TestWalkSimplePaths_Errors(t *testing.T) {
	noop := func([]string, int64) bool { return true }
	g := buildDiamond(t)
	assert.ErrorIs(t, dfs.WalkSimplePaths(nil, "A", "D", noop), dfs.ErrGraphNil)
	assert.ErrorIs(t, dfs.WalkSimplePaths(g, "X", "D", noop), dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, dfs.WalkSimplePaths(g, "A", "X", noop), dfs.ErrGoalVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, dfs.WalkSimplePaths(g, "A", "D", noop, dfs.WithContext(ctx)), context.Canceled)
}

func TestCheapest(t *testing.T) {
	res, err := dfs.Cheapest(buildDiamond(t), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, dfs.PathResult{Found: true, Cost: 3, Path: []string{"A", "B", "C", "D"}, Explored: 4}, res)

	res, err = dfs.Cheapest(buildDiamond(t), "C", "C")
	require.NoError(t, err)
	assert.Equal(t, dfs.PathResult{Found: true, Cost: 0, Path: []string{"C"}, Explored: 1}, res)

	g := buildChain(t, 3)
	res, err = dfs.Cheapest(g, "N2", "N0")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Explored)
}

func TestCheapest_GeneratedGraphsAreConnected(t *testing.T) {
	nodes := builder.Alphabet(6, builder.SymbolIDFn)
	for seed := int64(0); seed < 10; seed++ {
		g, err := builder.Generate(nodes, 0.3, builder.WeightRange{Min: 1, Max: 9}, builder.WithSeed(seed))
		require.NoError(t, err)
		res, err := dfs.Cheapest(g, "A", "F")
		require.NoError(t, err)
		assert.True(t, res.Found, "seed=%d", seed)
		assert.Equal(t, "A", res.Path[0])
		assert.Equal(t, "F", res.Path[len(res.Path)-1])
	}
}

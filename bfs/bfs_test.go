// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relnet/bfs"
	"github.com/katalvlaran/relnet/core"
)

func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) {
	t.Helper()
	_, err := g.AddEdge(from, to, w)
	require.NoError(t, err)
}

// chain builds A–B–C–D plus an isolated E, with weights that must not matter.
func chain(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithWeighted()}, opts...)...)
	mustEdge(t, g, "A", "B", 0.9)
	mustEdge(t, g, "B", "C", 0.1)
	mustEdge(t, g, "C", "D", 5)
	require.NoError(t, g.AddVertex("E"))

	return g
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	g := chain(t)
	_, err = bfs.BFS(g, "Z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_DepthsAndPaths(t *testing.T) {
	t.Parallel()

	g := chain(t)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, res.Depth)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)
	_, err = res.PathTo("E")
	require.ErrorIs(t, err, bfs.ErrNoPath)

	limited, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, limited.Order)

	filtered, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, filtered.Order)
}

func TestBFS_Directed(t *testing.T) {
	t.Parallel()

	g := chain(t, core.WithDirected(true))
	res, err := bfs.BFS(g, "C")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "D"}, res.Order)

	both, err := bfs.BFS(g, "C", bfs.WithUndirected())
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "D", "A"}, both.Order)
}

func TestComponents(t *testing.T) {
	t.Parallel()

	g := chain(t, core.WithDirected(true))
	mustEdge(t, g, "G", "F", 1)
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"A", "B", "C", "D"}, {"E"}, {"F", "G"}}, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

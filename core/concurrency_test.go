// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/relnet/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and all
// neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndFilter mixes readers with a filtering writer.
func TestConcurrentReadersAndFilter(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge("A", fmt.Sprintf("V%d", i), float64(i))
		require.NoError(t, err)
	}

	const readers = 20
	var wg sync.WaitGroup
	wg.Add(readers + 1)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, _, _ = g.Strength("A")
			_ = g.Stats()
		}()
	}
	go func() {
		defer wg.Done()
		g.FilterEdges(func(e *core.Edge) bool { return e.Weight >= 25 })
	}()
	wg.Wait()

	require.Equal(t, 25, g.EdgeCount())
}

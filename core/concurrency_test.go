// SPDX-License-Identifier: MIT

// Package core_test verifies that a built core.Graph is safe for concurrent reads.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/core"
)

// TestConcurrentNeighbors runs many readers against one star graph; every
// reader must observe the same connections.
func TestConcurrentNeighbors(t *testing.T) {
	const leaves = 200
	vs, bps := starGraph(leaves)
	g, err := core.NewGraph(vs, bps)
	require.NoError(t, err)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			conns := g.Neighbors(core.WrapVertexID(0))
			require.Len(t, conns, leaves)
			leaf := core.WrapVertexID(uint64(id%leaves + 1))
			require.Len(t, g.Neighbors(leaf), 1)
		}(i)
	}
	wg.Wait()
}

// TestConcurrentCopiesAreIndependent mutates the copies returned by the
// getters from several goroutines; the graph itself must stay unchanged.
func TestConcurrentCopiesAreIndependent(t *testing.T) {
	vs, bps := starGraph(20)
	g, err := core.NewGraph(vs, bps)
	require.NoError(t, err)
	want := g.Edges()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			edges := g.Edges()
			for j := range edges {
				edges[j].Weight = core.Scalar{0}
			}
			ids := g.VertexIDs()
			for j := range ids {
				ids[j] = core.WrapVertexID(999)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, want, g.Edges())
	require.Equal(t, vs, g.VertexIDs())
}

// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dfs"
)

// BenchmarkAllPaths_Grid4x4 enumerates corner-to-corner paths of a 4×4 grid.
func BenchmarkAllPaths_Grid4x4(b *testing.B) {
	spec, err := builder.Build(nil, builder.Grid(4, 4))
	if err != nil {
		b.Fatal(err)
	}
	g, err := spec.Graph()
	if err != nil {
		b.Fatal(err)
	}
	ids := g.VertexIDs()
	start, end := ids[0], ids[len(ids)-1]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.Count(g, start, end)
	}
}

// BenchmarkAllPaths_Chain measures the single-path case on a long chain.
func BenchmarkAllPaths_Chain(b *testing.B) {
	spec, err := builder.Build(nil, builder.Path(1000))
	if err != nil {
		b.Fatal(err)
	}
	g, err := spec.Graph()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.AllPaths(g, core.WrapVertexID(0), core.WrapVertexID(999))
	}
}

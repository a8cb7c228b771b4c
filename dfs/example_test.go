// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dfs"
)

// ExampleAllPaths enumerates both routes through a diamond.
func ExampleAllPaths() {
	vs := core.VertexIDs(1, 2, 3, 4)
	g, err := core.NewGraph(vs, []core.EdgeBlueprint[core.Unweighted]{
		{Vertex1: vs[0], Vertex2: vs[1]},
		{Vertex1: vs[0], Vertex2: vs[2]},
		{Vertex1: vs[1], Vertex2: vs[3]},
		{Vertex1: vs[2], Vertex2: vs[3]},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range dfs.AllPaths(g, vs[0], vs[3]) {
		fmt.Println(p)
	}
	// Output:
	// 1 -> 2 -> 4
	// 1 -> 3 -> 4
}

// ExampleWalk stops after the first path found.
func ExampleWalk() {
	vs := core.VertexIDs(1, 2, 3)
	g, _ := core.NewGraph(vs, []core.EdgeBlueprint[core.Scalar]{
		{Vertex1: vs[0], Vertex2: vs[2], Weight: core.Scalar{7}},
		{Vertex1: vs[0], Vertex2: vs[1], Weight: core.Scalar{1}},
		{Vertex1: vs[1], Vertex2: vs[2], Weight: core.Scalar{1}},
	})

	n := dfs.Walk(g, vs[0], vs[2], func(p core.Path) bool {
		fmt.Println("first:", p)
		return false
	})
	fmt.Println("delivered:", n, "of", dfs.Count(g, vs[0], vs[2]))
	// Output:
	// first: 1 -> 3
	// delivered: 1 of 2
}

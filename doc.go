// SPDX-License-Identifier: MIT

// Package lvlpath is an in-memory toolkit for path queries on small to
// medium undirected weighted graphs.
//
// What is in the box?
//
//	core/      immutable Graph, opaque VertexID/EdgeID, neighbor lookup
//	dijkstra/  single-source shortest paths with deterministic tie-breaking
//	dfs/       enumeration of every simple path between two vertices
//	builder/   deterministic topology generators (path, grid, random, ...)
//	graphfile/ YAML/JSON graph documents with env expansion and fingerprints
//	cmd/       the lvlpath command line tool
//
// A Graph is built once from a vertex list and edge blueprints. Construction
// checks that every edge names known vertices and numbers the edges in input
// order. The result is never mutated, so a single Graph can serve any number
// of concurrent searches.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
// is the vertex list [1 2 3 4] with blueprints 1-2, 1-3, 2-4 and 3-4.
// dfs.AllPaths(g, 1, 4) returns [1 2 4] and [1 3 4]; dijkstra.ShortestPath
// picks the cheaper of the two.
//
// Diagnostics go through github.com/mandelsoft/logging under the realm
// prefix "lvlpath". Every package logs at Debug and Trace only.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath

// SPDX-License-Identifier: MIT

// Package dijkstra provides single-source shortest paths over an immutable
// core.Graph[core.Scalar] whose edges are traversable in both directions.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns one minimum-cost vertex path
//     start → end, inclusive of both endpoints.
//   - Dijkstra(g, start) returns the whole Result (distances + predecessors)
//     so several destinations can be read off a single run.
//   - PathCost(g, path) prices an arbitrary path.
//
// Seeding:
//
//   - SeedStart (default): the start vertex has distance 0.
//   - SeedFirstVertex: the first vertex of the graph's vertex list has
//     distance 0 whatever start is. This reproduces an older behaviour in
//     which paths are read off the first vertex's shortest-path tree; when
//     start is the first vertex both modes agree.
//
// Error handling:
//
//   - ErrNilGraph:       g is nil.
//   - ErrEmptyGraph:     g has no vertices.
//   - ErrVertexNotFound: start or end is missing (*VertexNotFoundError names which).
//   - ErrNoPath:         end is unreachable (*NoPathError carries both endpoints).
//   - ErrBrokenPath:     PathCost was given non-adjacent consecutive vertices.
//
// Numeric semantics:
//
//   - Weights and distances are uint64. Infinity (math.MaxUint64) marks
//     unreached vertices; sums reaching it are treated as unreachable.
//
// Thread safety:
//
//   - Each call allocates its own state; a Graph may be searched concurrently.
//
// Example:
//
//	path, err := dijkstra.ShortestPath(g, core.WrapVertexID(1), core.WrapVertexID(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // 1 -> 3 -> 4
package dijkstra

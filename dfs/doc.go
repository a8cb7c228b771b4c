// SPDX-License-Identifier: MIT

// Package dfs enumerates all simple paths between two vertices of a
// core.Graph by depth-first backtracking.
//
// What:
//
//   - AllPaths(g, start, end): every simple (cycle-free) path start → end,
//     inclusive of both endpoints, collected into a slice.
//   - Walk(g, start, end, fn): the streaming form; fn may stop the walk.
//   - Count(g, start, end): number of simple paths.
//
// Algorithm:
//
//  1. A vertex already on the in-progress path is skipped (no cycles).
//  2. The vertex is marked and appended to the path.
//  3. Reaching end records a copy of the path and backtracks immediately.
//  4. Otherwise every distinct neighbor is explored recursively.
//  5. The vertex is popped and unmarked so other branches can reuse it.
//
// Edges are traversable in both directions. Weights are ignored, so any
// weight dimension (including core.Unweighted) is accepted.
//
// Errors:
//
//   - None. An unreachable end, or a start/end outside the graph, yields an
//     empty (non-nil) result.
//
// Complexity:
//
//   - Time:   exponential in the worst case (the number of simple paths in a
//     complete graph grows factorially); each expansion scans the edge list.
//   - Memory: O(V) for the visited set and path buffer plus the output.
//
// Options:
//
//   - WithMaxDepth(limit)   abandons branches longer than limit edges.
//   - WithLogger(l)         routes trace output to l.
//
// Concurrency:
//
//   - The walker state is allocated per call; one Graph may be enumerated
//     from many goroutines at once.
package dfs

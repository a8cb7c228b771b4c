// SPDX-License-Identifier: MIT

// Package core provides the immutable, in-memory weighted Graph that every
// search package in lvlpath operates on.
//
// A Graph G = (V,E) is assembled once from caller-owned data:
//
//   - an ordered list of VertexID values (the vertex set),
//   - an ordered list of EdgeBlueprint values (endpoints + weight, no ID).
//
// NewGraph validates referential integrity, assigns EdgeIDs 0,1,2,… in
// blueprint order and returns a Graph that is never mutated afterwards.
// Every accessor hands out copies, so one Graph may be shared freely between
// goroutines.
//
// Identifiers:
//
//	VertexID and EdgeID are opaque wrappers over uint64. There is no implicit
//	conversion from or to raw numbers: use WrapVertexID / WrapEdgeID and
//	Unwrap. Equality, hashing (map keys) and ordering follow the wrapped value.
//
// Weights:
//
//	Weight is a constraint over fixed-length uint64 arrays ([0]uint64 …
//	[4]uint64). The dimension D is therefore fixed at compile time:
//
//	  core.Graph[core.Scalar]     // D=1, accepted by dijkstra
//	  core.Graph[core.Unweighted] // D=0, topology only
//	  core.Graph[[3]uint64]       // D=3, stored and traversed, not ranked
//
// Edges are stored once and traversed in both directions: Neighbors(v)
// checks both endpoint fields of every edge.
//
// Errors:
//
//	ErrReferentialIntegrity – a blueprint names a vertex absent from the vertex list
//	                          (concrete type *ReferentialIntegrityError).
//	ErrDuplicateVertex      – the vertex list repeats an ID (unless WithDuplicateVertices).
//
// Complexity:
//
//	NewGraph:  O(V + E) time, O(V + E) space.
//	Neighbors: O(E) per call (full edge scan, no adjacency index).
package core

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters of Graph.
// Policy:
//   - No mutation; every slice returned is a fresh copy.
//   - A nil *Graph behaves like an empty graph.

package core

// Vertices returns the vertices in input order.
// Complexity: O(V).
func (g *Graph[W]) Vertices() []Vertex {
	if g == nil {
		return []Vertex{}
	}
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexIDs returns the IDs of Vertices() in the same order.
// Complexity: O(V).
func (g *Graph[W]) VertexIDs() []VertexID {
	if g == nil {
		return []VertexID{}
	}
	out := make([]VertexID, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.ID
	}

	return out
}

// Edges returns the edges in EdgeID order.
// Complexity: O(E).
func (g *Graph[W]) Edges() []Edge[W] {
	if g == nil {
		return []Edge[W]{}
	}
	out := make([]Edge[W], len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge with the given id.
// Complexity: O(1), EdgeIDs are positions.
func (g *Graph[W]) Edge(id EdgeID) (Edge[W], bool) {
	if g == nil || id.Unwrap() >= uint64(len(g.edges)) {
		return Edge[W]{}, false
	}

	return g.edges[id.Unwrap()], true
}

// HasVertex reports whether id is in the vertex set.
// Complexity: O(1).
func (g *Graph[W]) HasVertex(id VertexID) bool {
	if g == nil {
		return false
	}

	return g.members.Has(id)
}

// VertexCount returns the length of the vertex list, duplicates included.
func (g *Graph[W]) VertexCount() int {
	if g == nil {
		return 0
	}

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph[W]) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[W]) IsEmpty() bool { return g.VertexCount() == 0 }

// SPDX-License-Identifier: MIT
//
// File: neighbors.go
// Role: neighbor derivation with undirected semantics over once-stored edges.
// Determinism:
//   - Connections follow edge input (EdgeID) order.

package core

// Neighbors returns one Connection per edge incident to v, pointing at the
// opposite endpoint and carrying the edge's weight.
//
// An edge (A,B) yields A→B when queried from A and B→A when queried from B;
// a self-loop (A,A) yields a single A→A. Unknown or isolated vertices yield
// an empty, non-nil slice.
//
// Complexity: O(E) time, O(deg(v)) space.
func (g *Graph[W]) Neighbors(v VertexID) []Connection[W] {
	out := make([]Connection[W], 0)
	if g == nil {
		return out
	}
	for _, e := range g.edges {
		switch v {
		case e.Vertex1:
			out = append(out, Connection[W]{OtherVertex: e.Vertex2, Weight: e.Weight, Edge: e.ID})
		case e.Vertex2:
			out = append(out, Connection[W]{OtherVertex: e.Vertex1, Weight: e.Weight, Edge: e.ID})
		}
	}

	return out
}

// FindNeighbors is the function form of g.Neighbors(v).
func FindNeighbors[W Weight](g *Graph[W], v VertexID) []Connection[W] {
	return g.Neighbors(v)
}

// SPDX-License-Identifier: MIT

package core

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Weight is the set of fixed-length cost vectors an edge may carry.
// The array length is the weight dimension D.
type Weight interface {
	~[0]uint64 | ~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64
}

// Scalar is the one-dimensional weight used by shortest-path search.
type Scalar = [1]uint64

// Unweighted is the zero-dimensional weight for pure topologies.
type Unweighted = [0]uint64

// Vertex is a node of the Graph; its identity is solely its ID.
type Vertex struct {
	ID VertexID
}

// EdgeBlueprint is a caller-supplied edge specification prior to ID assignment.
type EdgeBlueprint[W Weight] struct {
	Vertex1 VertexID
	Vertex2 VertexID
	Weight  W
}

// Edge is a blueprint plus the EdgeID assigned by NewGraph.
//
// Vertex1/Vertex2 keep the blueprint order, but the edge is traversable in
// both directions.
type Edge[W Weight] struct {
	ID      EdgeID
	Vertex1 VertexID
	Vertex2 VertexID
	Weight  W
}

// Touches reports whether v is one of the endpoints of e.
func (e Edge[W]) Touches(v VertexID) bool {
	return e.Vertex1 == v || e.Vertex2 == v
}

// Other returns the endpoint of e opposite to v. ok is false when v is not
// an endpoint. For a self-loop the vertex itself is returned.
func (e Edge[W]) Other(v VertexID) (other VertexID, ok bool) {
	switch v {
	case e.Vertex1:
		return e.Vertex2, true
	case e.Vertex2:
		return e.Vertex1, true
	default:
		return VertexID{}, false
	}
}

// Connection is a derived adjacency record produced by Neighbors; it is
// never stored in the Graph.
type Connection[W Weight] struct {
	OtherVertex VertexID
	Weight      W
	Edge        EdgeID
}

// Path is an ordered walk from source to destination, both inclusive.
type Path []VertexID

// Equal reports whether p and other visit the same vertices in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Contains reports whether v occurs in p.
func (p Path) Contains(v VertexID) bool {
	for _, id := range p {
		if id == v {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Uint64s unwraps every vertex of p.
func (p Path) Uint64s() []uint64 {
	out := make([]uint64, len(p))
	for i, id := range p {
		out[i] = id.Unwrap()
	}

	return out
}

// String renders p as "1 -> 2 -> 3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = id.String()
	}

	return strings.Join(parts, " -> ")
}

// Graph is an immutable weighted graph with undirected edge semantics.
//
// vertices and edges keep caller input order; edges[i].ID == WrapEdgeID(i).
// members indexes the vertex IDs for O(1) membership tests.
type Graph[W Weight] struct {
	vertices []Vertex
	edges    []Edge[W]
	members  sets.Set[VertexID]
}

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: NewGraph, the single constructor of Graph.
// Determinism:
//   - Vertices keep input order.
//   - EdgeIDs are 0..n-1 in blueprint order.
// Atomicity:
//   - On any validation failure no Graph is returned.

package core

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

// NewGraph assembles a Graph from a vertex list and edge blueprints.
//
// Implementation:
//   - Stage 1: Index the vertex list; reject duplicates unless WithDuplicateVertices.
//   - Stage 2: Check both endpoints of every blueprint (vertex1 first).
//   - Stage 3: Copy vertices in input order.
//   - Stage 4: Assign EdgeIDs sequentially from 0 in blueprint order.
//
// Errors:
//   - *ReferentialIntegrityError (errors.Is ErrReferentialIntegrity) for the
//     first blueprint with an unknown endpoint.
//   - ErrDuplicateVertex (wrapped with the ID and position).
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewGraph[W Weight](vertices []VertexID, blueprints []EdgeBlueprint[W], opts ...GraphOption) (*Graph[W], error) {
	cfg := newGraphConfig(opts...)
	log := cfg.log

	// 1) Index vertices.
	members := sets.New[VertexID]()
	for i, id := range vertices {
		if members.Has(id) && !cfg.allowDuplicates {
			return nil, fmt.Errorf("%w: %s at position %d", ErrDuplicateVertex, id, i)
		}
		members.Insert(id)
	}

	// 2) Referential integrity, checked before anything is allocated for the graph.
	for i, bp := range blueprints {
		log.Trace("checking blueprint {{index}}: {{vertex1}} - {{vertex2}}",
			"index", i, "vertex1", bp.Vertex1, "vertex2", bp.Vertex2)
		if !members.Has(bp.Vertex1) {
			return nil, &ReferentialIntegrityError{Index: i, Vertex: bp.Vertex1, Endpoint: EndpointVertex1}
		}
		if !members.Has(bp.Vertex2) {
			return nil, &ReferentialIntegrityError{Index: i, Vertex: bp.Vertex2, Endpoint: EndpointVertex2}
		}
	}

	// 3) Vertices in input order.
	g := &Graph[W]{
		vertices: make([]Vertex, len(vertices)),
		edges:    make([]Edge[W], 0, len(blueprints)),
		members:  members,
	}
	for i, id := range vertices {
		g.vertices[i] = Vertex{ID: id}
	}

	// 4) Sequential edge identities.
	id := WrapEdgeID(0)
	for _, bp := range blueprints {
		g.edges = append(g.edges, Edge[W]{
			ID:      id,
			Vertex1: bp.Vertex1,
			Vertex2: bp.Vertex2,
			Weight:  bp.Weight,
		})
		id = id.Next()
	}

	log.Debug("graph built with {{vertices}} vertices and {{edges}} edges",
		"vertices", len(g.vertices), "edges", len(g.edges))

	return g, nil
}

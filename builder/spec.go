// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// spec.go - Spec, the mutable input set accumulated by constructors.

package builder

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvlpath/core"
)

// Spec is a vertex list plus edge blueprints, ready for core.NewGraph.
// Vertices keep first-insertion order; Blueprints keep emission order.
type Spec struct {
	Vertices   []core.VertexID
	Blueprints []core.EdgeBlueprint[core.Scalar]

	index sets.Set[core.VertexID]
}

// NewSpec returns an empty Spec.
func NewSpec() *Spec {
	return &Spec{index: sets.New[core.VertexID]()}
}

// AddVertex appends id unless it is already present. Re-adding is a no-op.
func (s *Spec) AddVertex(id core.VertexID) {
	if s.index == nil {
		s.index = sets.New[core.VertexID](s.Vertices...)
	}
	if s.index.Has(id) {
		return
	}
	s.index.Insert(id)
	s.Vertices = append(s.Vertices, id)
}

// HasVertex reports whether id was added.
func (s *Spec) HasVertex(id core.VertexID) bool {
	if s.index == nil {
		return sets.New[core.VertexID](s.Vertices...).Has(id)
	}

	return s.index.Has(id)
}

// AddEdge appends a blueprint u–v. Both endpoints must already be vertices.
func (s *Spec) AddEdge(u, v core.VertexID, w uint64) error {
	if !s.HasVertex(u) || !s.HasVertex(v) {
		return fmt.Errorf("AddEdge(%s→%s): endpoint not added: %w", u, v, ErrConstructFailed)
	}
	s.Blueprints = append(s.Blueprints, core.EdgeBlueprint[core.Scalar]{
		Vertex1: u,
		Vertex2: v,
		Weight:  core.Scalar{w},
	})

	return nil
}

// Graph builds the immutable core.Graph from s.
func (s *Spec) Graph(opts ...core.GraphOption) (*core.Graph[core.Scalar], error) {
	return core.NewGraph(s.Vertices, s.Blueprints, opts...)
}

// Unweighted builds a core.Graph of the same topology without weights.
func (s *Spec) Unweighted(opts ...core.GraphOption) (*core.Graph[core.Unweighted], error) {
	bps := make([]core.EdgeBlueprint[core.Unweighted], len(s.Blueprints))
	for i, bp := range s.Blueprints {
		bps[i] = core.EdgeBlueprint[core.Unweighted]{Vertex1: bp.Vertex1, Vertex2: bp.Vertex2}
	}

	return core.NewGraph(s.Vertices, bps, opts...)
}

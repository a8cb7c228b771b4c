// SPDX-License-Identifier: MIT

package graphfile

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
)

// ErrDimension indicates an edge whose weight has more components than the
// requested graph dimension.
var ErrDimension = errors.New("graphfile: weight dimension mismatch")

// Document is the serialized form of a graph: a vertex list and edge
// blueprints. Edges are undirected; from/to only fix the blueprint order.
type Document struct {
	Vertices []uint64  `json:"vertices"`
	Edges    []EdgeDoc `json:"edges,omitempty"`
}

// EdgeDoc is one edge blueprint. A missing weight reads as the zero weight.
type EdgeDoc struct {
	From   uint64   `json:"from"`
	To     uint64   `json:"to"`
	Weight []uint64 `json:"weight,omitempty"`
}

// Scalar converts d into NewGraph input with one-dimensional weights.
// An edge with more than one weight component fails with ErrDimension.
func (d *Document) Scalar() ([]core.VertexID, []core.EdgeBlueprint[core.Scalar], error) {
	bps := make([]core.EdgeBlueprint[core.Scalar], len(d.Edges))
	for i, e := range d.Edges {
		if len(e.Weight) > 1 {
			return nil, nil, errors.Wrapf(ErrDimension, "edge %d (%d-%d) has %d weight components", i, e.From, e.To, len(e.Weight))
		}
		var w core.Scalar
		if len(e.Weight) == 1 {
			w[0] = e.Weight[0]
		}
		bps[i] = core.EdgeBlueprint[core.Scalar]{
			Vertex1: core.WrapVertexID(e.From),
			Vertex2: core.WrapVertexID(e.To),
			Weight:  w,
		}
	}

	return core.VertexIDs(d.Vertices...), bps, nil
}

// Unweighted converts d into NewGraph input ignoring all weights.
func (d *Document) Unweighted() ([]core.VertexID, []core.EdgeBlueprint[core.Unweighted]) {
	bps := make([]core.EdgeBlueprint[core.Unweighted], len(d.Edges))
	for i, e := range d.Edges {
		bps[i] = core.EdgeBlueprint[core.Unweighted]{
			Vertex1: core.WrapVertexID(e.From),
			Vertex2: core.WrapVertexID(e.To),
		}
	}

	return core.VertexIDs(d.Vertices...), bps
}

// Graph builds the scalar-weighted graph described by d.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph[core.Scalar], error) {
	vs, bps, err := d.Scalar()
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(vs, bps, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "building graph from document")
	}

	return g, nil
}

// FromGraph renders g as a Document. Edges keep EdgeID order.
func FromGraph(g *core.Graph[core.Scalar]) *Document {
	d := &Document{Vertices: core.Path(g.VertexIDs()).Uint64s()}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, EdgeDoc{
			From:   e.Vertex1.Unwrap(),
			To:     e.Vertex2.Unwrap(),
			Weight: []uint64{e.Weight[0]},
		})
	}

	return d
}

// FromSpec renders a generated builder.Spec as a Document.
func FromSpec(s *builder.Spec) *Document {
	d := &Document{Vertices: core.Path(s.Vertices).Uint64s()}
	for _, bp := range s.Blueprints {
		d.Edges = append(d.Edges, EdgeDoc{
			From:   bp.Vertex1.Unwrap(),
			To:     bp.Vertex2.Unwrap(),
			Weight: []uint64{bp.Weight[0]},
		})
	}

	return d
}

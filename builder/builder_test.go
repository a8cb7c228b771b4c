// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
)

func pairs(s *builder.Spec) [][2]uint64 {
	out := make([][2]uint64, len(s.Blueprints))
	for i, bp := range s.Blueprints {
		out[i] = [2]uint64{bp.Vertex1.Unwrap(), bp.Vertex2.Unwrap()}
	}

	return out
}

func degrees(s *builder.Spec) map[uint64]int {
	deg := map[uint64]int{}
	for _, bp := range s.Blueprints {
		deg[bp.Vertex1.Unwrap()]++
		deg[bp.Vertex2.Unwrap()]++
	}

	return deg
}

func TestTopologies_Shape(t *testing.T) {
	tests := []struct {
		name  string
		cons  builder.Constructor
		verts int
		edges [][2]uint64
	}{
		{"path", builder.Path(4), 4, [][2]uint64{{0, 1}, {1, 2}, {2, 3}}},
		{"cycle", builder.Cycle(3), 3, [][2]uint64{{0, 1}, {1, 2}, {2, 0}}},
		{"star", builder.Star(4), 4, [][2]uint64{{0, 1}, {0, 2}, {0, 3}}},
		{"wheel", builder.Wheel(4), 4, [][2]uint64{{0, 1}, {1, 2}, {2, 0}, {3, 0}, {3, 1}, {3, 2}}},
		{"complete", builder.Complete(4), 4, [][2]uint64{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{"complete K1", builder.Complete(1), 1, [][2]uint64{}},
		{"bipartite", builder.CompleteBipartite(2, 2), 4, [][2]uint64{{0, 2}, {0, 3}, {1, 2}, {1, 3}}},
		{"grid", builder.Grid(2, 3), 6, [][2]uint64{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}},
		{"sparse p=1", builder.RandomSparse(3, 1), 3, [][2]uint64{{0, 1}, {0, 2}, {1, 2}}},
		{"sparse p=0", builder.RandomSparse(3, 0), 3, [][2]uint64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := builder.Build(nil, tc.cons)
			require.NoError(t, err)
			assert.Len(t, s.Vertices, tc.verts)
			assert.Equal(t, tc.edges, pairs(s))
			for _, bp := range s.Blueprints {
				assert.Equal(t, core.Scalar{builder.DefaultEdgeWeight}, bp.Weight)
			}

			g, err := s.Graph()
			require.NoError(t, err)
			assert.Equal(t, len(tc.edges), g.EdgeCount())
		})
	}
}

func TestTopologies_Validation(t *testing.T) {
	tests := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"bipartite", builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"sparse n", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"sparse p<0", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"sparse p>1", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse NaN", builder.RandomSparse(3, math.NaN()), builder.ErrInvalidProbability},
		{"sparse rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"regular rng", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"regular parity", builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"regular degree", builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := builder.Build(nil, tc.cons)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_ComposeSharesVertices(t *testing.T) {
	s, err := builder.Build(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)

	assert.Equal(t, core.VertexIDs(0, 1, 2), s.Vertices)
	assert.Len(t, s.Blueprints, 2+3)

	g, err := s.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
}

func TestSpec_AddVertexIdempotent(t *testing.T) {
	s := builder.NewSpec()
	s.AddVertex(core.WrapVertexID(7))
	s.AddVertex(core.WrapVertexID(7))
	s.AddVertex(core.WrapVertexID(2))

	assert.Equal(t, core.VertexIDs(7, 2), s.Vertices)
	assert.True(t, s.HasVertex(core.WrapVertexID(2)))
	assert.ErrorIs(t, s.AddEdge(core.WrapVertexID(7), core.WrapVertexID(9), 1), builder.ErrConstructFailed)

	// A literal Spec without the index still behaves.
	lit := &builder.Spec{Vertices: core.VertexIDs(1)}
	lit.AddVertex(core.WrapVertexID(1))
	assert.Len(t, lit.Vertices, 1)
}

func TestSpec_Unweighted(t *testing.T) {
	s, err := builder.Build(nil, builder.Cycle(4))
	require.NoError(t, err)

	g, err := s.Unweighted()
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *builder.Spec {
		s, err := builder.Build([]builder.Option{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeight(1, 50)),
		}, builder.RandomSparse(20, 0.2))
		require.NoError(t, err)

		return s
	}

	a, b := build(42), build(42)
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Equal(t, a.Blueprints, b.Blueprints)

	for _, bp := range a.Blueprints {
		assert.NotEqual(t, bp.Vertex1, bp.Vertex2)
		assert.GreaterOrEqual(t, bp.Weight[0], uint64(1))
		assert.LessOrEqual(t, bp.Weight[0], uint64(50))
	}
}

func TestRandomRegular_Degrees(t *testing.T) {
	s, err := builder.Build([]builder.Option{builder.WithSeed(5)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)

	assert.Len(t, s.Blueprints, 15)
	for _, id := range s.Vertices {
		assert.Equal(t, 3, degrees(s)[id.Unwrap()], "vertex %s", id)
	}

	empty, err := builder.Build([]builder.Option{builder.WithSeed(5)}, builder.RandomRegular(4, 0))
	require.NoError(t, err)
	assert.Empty(t, empty.Blueprints)
}

func TestIDSchemes(t *testing.T) {
	s, err := builder.Build([]builder.Option{builder.WithFirstID(10)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, core.VertexIDs(10, 11, 12), s.Vertices)

	s, err = builder.Build([]builder.Option{builder.WithIDScheme(builder.StrideIDFn(1, 5))}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, core.VertexIDs(1, 6, 11), s.Vertices)

	assert.Panics(t, func() { builder.StrideIDFn(0, 0) })
	assert.Panics(t, func() { builder.DefaultIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, uint64(9), builder.ConstantWeight(9)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, uint64(3), builder.UniformWeight(3, 8)(nil))
	assert.Equal(t, uint64(4), builder.UniformWeight(4, 4)(rand.New(rand.NewSource(1))))

	rng := rand.New(rand.NewSource(1))
	full := builder.UniformWeight(0, math.MaxUint64)
	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			_ = full(rng)
		}
	})
	upper := builder.UniformWeight(1, math.MaxUint64)
	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			assert.GreaterOrEqual(t, upper(rng), uint64(1))
		}
	})
	half := builder.UniformWeight(10, 10+math.MaxInt64)
	for i := 0; i < 10; i++ {
		w := half(rng)
		assert.True(t, w >= 10 && w <= 10+math.MaxInt64, "weight %d", w)
	}

	u := builder.UniformWeight(2, 4)
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.True(t, w >= 2 && w <= 4, "weight %d", w)
	}

	assert.Panics(t, func() { builder.UniformWeight(5, 1) })
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestWithRand_SharedStream(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a, err := builder.Build([]builder.Option{builder.WithRand(rng)}, builder.RandomSparse(12, 0.5))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithSeed(9)}, builder.RandomSparse(12, 0.5))
	require.NoError(t, err)

	assert.Equal(t, a.Blueprints, b.Blueprints)
}

// SPDX-License-Identifier: MIT

// Package builder generates vertex lists and edge blueprints for well-known
// topologies, for use as fixtures, benchmarks and CLI-generated documents.
//
// Constructors never touch a core.Graph directly: core graphs are immutable,
// so Build accumulates a Spec (vertices + blueprints) and Spec.Graph hands it
// to core.NewGraph once.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(opts, cons...): runs constructors in order over a fresh Spec.
//     – Spec.Graph / Spec.Unweighted: materialize the core.Graph.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, RandomRegular.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:   index i → VertexID i.
//     – OffsetIDFn:    index i → first+i (WithFirstID).
//     – StrideIDFn:    index i → first+i*step.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn: constant DefaultEdgeWeight.
//     – ConstantWeight:  fixed user-provided value.
//     – UniformWeight:   uniform over [min,max].
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order always
//     produce the same Spec.
//   - Idempotent vertices: overlapping constructors share vertices instead of
//     duplicating them.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return wrapped sentinel errors.
package builder

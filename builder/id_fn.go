// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// id_fn.go - vertex ID schemes (index → core.VertexID).
//
// All schemes are pure and deterministic. Negative indices are a programming
// error and panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// IDFn maps a constructor-local vertex index to a VertexID.
type IDFn func(idx int) core.VertexID

// DefaultIDFn maps index i to VertexID i.
func DefaultIDFn(idx int) core.VertexID {
	if idx < 0 {
		panic(fmt.Sprintf("DefaultIDFn: idx must be ≥ 0, got %d", idx))
	}

	return core.WrapVertexID(uint64(idx))
}

// OffsetIDFn maps index i to VertexID first+i.
func OffsetIDFn(first uint64) IDFn {
	return StrideIDFn(first, 1)
}

// StrideIDFn maps index i to VertexID first+i*step. Panics if step == 0.
func StrideIDFn(first, step uint64) IDFn {
	if step == 0 {
		panic("StrideIDFn: step must be > 0")
	}

	return func(idx int) core.VertexID {
		if idx < 0 {
			panic(fmt.Sprintf("StrideIDFn: idx must be ≥ 0, got %d", idx))
		}

		return core.WrapVertexID(first + uint64(idx)*step)
	}
}

// SPDX-License-Identifier: MIT
//
// File: ids.go
// Role: opaque identifier types for vertices and edges.
// Policy:
//   - No implicit conversion: the underlying number is reachable only through
//     Wrap*/Unwrap.
//   - VertexID has no arithmetic; EdgeID has Next() for sequential assignment.

package core

import "strconv"

// VertexID identifies a vertex. The zero value wraps 0.
type VertexID struct {
	n uint64
}

// WrapVertexID wraps a natural number into a VertexID.
func WrapVertexID(n uint64) VertexID {
	return VertexID{n: n}
}

// VertexIDs wraps every number in ns, preserving order.
func VertexIDs(ns ...uint64) []VertexID {
	out := make([]VertexID, len(ns))
	for i, n := range ns {
		out[i] = WrapVertexID(n)
	}

	return out
}

// Unwrap returns the wrapped natural number.
func (id VertexID) Unwrap() uint64 { return id.n }

// Compare returns -1, 0 or +1 depending on whether id is less than, equal to
// or greater than other.
func (id VertexID) Compare(other VertexID) int {
	return compareUint64(id.n, other.n)
}

// Less reports whether id orders before other.
func (id VertexID) Less(other VertexID) bool { return id.n < other.n }

// String renders the wrapped number in base 10.
func (id VertexID) String() string { return strconv.FormatUint(id.n, 10) }

// EdgeID identifies an edge inside one Graph. EdgeIDs are assigned by
// NewGraph and never supplied by callers.
type EdgeID struct {
	n uint64
}

// WrapEdgeID wraps a natural number into an EdgeID.
func WrapEdgeID(n uint64) EdgeID {
	return EdgeID{n: n}
}

// Unwrap returns the wrapped natural number.
func (id EdgeID) Unwrap() uint64 { return id.n }

// Next returns the EdgeID that follows id.
func (id EdgeID) Next() EdgeID { return EdgeID{n: id.n + 1} }

// Compare returns -1, 0 or +1 depending on whether id is less than, equal to
// or greater than other.
func (id EdgeID) Compare(other EdgeID) int {
	return compareUint64(id.n, other.n)
}

// Less reports whether id orders before other.
func (id EdgeID) Less(other EdgeID) bool { return id.n < other.n }

// String renders the wrapped number in base 10.
func (id EdgeID) String() string { return strconv.FormatUint(id.n, 10) }

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

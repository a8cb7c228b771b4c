// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: error taxonomy of graph construction.
// Policy:
//   - Callers branch with errors.Is(err, ErrX) or errors.As(err, &*XError).
//   - Typed errors unwrap to their sentinel.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrReferentialIntegrity indicates that an edge blueprint references a
	// vertex missing from the supplied vertex list.
	ErrReferentialIntegrity = errors.New("core: edge references unknown vertex")

	// ErrDuplicateVertex indicates that the vertex list contains the same ID twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")
)

// Endpoint names one side of an edge blueprint.
type Endpoint int

const (
	// EndpointVertex1 is EdgeBlueprint.Vertex1.
	EndpointVertex1 Endpoint = iota + 1
	// EndpointVertex2 is EdgeBlueprint.Vertex2.
	EndpointVertex2
)

// String returns the blueprint field name of the endpoint.
func (e Endpoint) String() string {
	switch e {
	case EndpointVertex1:
		return "vertex1"
	case EndpointVertex2:
		return "vertex2"
	default:
		return fmt.Sprintf("Endpoint(%d)", int(e))
	}
}

// ReferentialIntegrityError reports the first blueprint whose endpoint is not
// in the vertex list.
type ReferentialIntegrityError struct {
	// Index is the position of the offending blueprint in the input slice.
	Index int
	// Vertex is the unknown vertex ID.
	Vertex VertexID
	// Endpoint tells whether Vertex was the first or second endpoint.
	Endpoint Endpoint
}

// Error implements error.
func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("core: blueprint %d: %s %s is not in the provided vertex list",
		e.Index, e.Endpoint, e.Vertex)
}

// Unwrap returns ErrReferentialIntegrity.
func (e *ReferentialIntegrityError) Unwrap() error { return ErrReferentialIntegrity }

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/mandelsoft/logging"

	"github.com/katalvlaran/lvlpath/core"
)

// Infinity is the tentative distance of a vertex not yet reached.
// A legitimate path cost equal to Infinity is indistinguishable from
// "unreachable"; relaxation saturates instead of overflowing.
const Infinity uint64 = math.MaxUint64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("dijkstra: no vertices exist")

	// ErrVertexNotFound indicates that start or end is not a vertex of the graph.
	// The concrete error is *VertexNotFoundError.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that end cannot be reached from start.
	// The concrete error is *NoPathError.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrBrokenPath indicates that two consecutive vertices of a path share no edge.
	ErrBrokenPath = errors.New("dijkstra: consecutive path vertices are not adjacent")
)

// Endpoint names the role of a vertex in a search request.
type Endpoint int

const (
	// Start is the source vertex of the search.
	Start Endpoint = iota + 1
	// End is the destination vertex of the search.
	End
)

// String returns "start" or "end".
func (e Endpoint) String() string {
	switch e {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Endpoint(%d)", int(e))
	}
}

// VertexNotFoundError carries the endpoint that is missing from the graph.
type VertexNotFoundError struct {
	Endpoint Endpoint
	ID       core.VertexID
}

// Error implements error.
func (e *VertexNotFoundError) Error() string {
	return fmt.Sprintf("dijkstra: %s vertex %s not in graph", e.Endpoint, e.ID)
}

// Unwrap returns ErrVertexNotFound.
func (e *VertexNotFoundError) Unwrap() error { return ErrVertexNotFound }

// NoPathError carries both endpoints of an unreachable request.
type NoPathError struct {
	Start core.VertexID
	End   core.VertexID
}

// Error implements error.
func (e *NoPathError) Error() string {
	return fmt.Sprintf("dijkstra: no path from starting vertex %s to ending vertex %s", e.Start, e.End)
}

// Unwrap returns ErrNoPath.
func (e *NoPathError) Unwrap() error { return ErrNoPath }

// SeedMode selects the vertex whose tentative distance starts at zero.
type SeedMode int

const (
	// SeedStart seeds the requested start vertex. Results are true shortest paths.
	SeedStart SeedMode = iota

	// SeedFirstVertex seeds the first vertex of the graph's vertex list,
	// regardless of the requested start. Paths are then read off the
	// shortest-path tree of that first vertex; they are shortest only when
	// start is the first vertex.
	SeedFirstVertex
)

// String returns the mode name.
func (m SeedMode) String() string {
	switch m {
	case SeedStart:
		return "start"
	case SeedFirstVertex:
		return "first-vertex"
	default:
		return fmt.Sprintf("SeedMode(%d)", int(m))
	}
}

// Options configures a Dijkstra run.
//
// Seed   – which vertex is seeded with distance 0 (default SeedStart).
// Logger – diagnostics sink (default: REALM logger of the default context).
type Options struct {
	Seed   SeedMode
	Logger logging.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithSeedMode selects the seeding policy. Panics on an unknown mode.
func WithSeedMode(mode SeedMode) Option {
	if mode != SeedStart && mode != SeedFirstVertex {
		panic(fmt.Sprintf("dijkstra: WithSeedMode(%d): unknown mode", int(mode)))
	}

	return func(o *Options) {
		o.Seed = mode
	}
}

// WithLogger routes run diagnostics to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults: SeedStart and no explicit logger.
func DefaultOptions() Options {
	return Options{
		Seed: SeedStart,
	}
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Result is the final state of a Dijkstra run.
type Result struct {
	start core.VertexID
	seed  core.VertexID
	dist  map[core.VertexID]uint64
	prev  map[core.VertexID]core.VertexID
}

// Start returns the requested start vertex.
func (r *Result) Start() core.VertexID { return r.start }

// Seed returns the vertex that was seeded with distance 0.
func (r *Result) Seed() core.VertexID { return r.seed }

// Distance returns the final tentative distance of v from the seed and
// whether v is reachable. Unknown and unreachable vertices report
// (Infinity, false).
func (r *Result) Distance(v core.VertexID) (uint64, bool) {
	d, ok := r.dist[v]
	if !ok || d == Infinity {
		return Infinity, false
	}

	return d, true
}

// Previous returns the predecessor of v on its best known path.
func (r *Result) Previous(v core.VertexID) (core.VertexID, bool) {
	p, ok := r.prev[v]

	return p, ok
}

// PathTo walks predecessors backwards from end until the start vertex and
// returns the path start → end.
//
// Errors:
//   - *VertexNotFoundError (End) if end was not part of the run.
//   - *NoPathError if a vertex without predecessor is reached before start.
func (r *Result) PathTo(end core.VertexID) (core.Path, error) {
	if _, ok := r.dist[end]; !ok {
		return nil, &VertexNotFoundError{Endpoint: End, ID: end}
	}

	// Collected end → start, reversed below.
	rev := core.Path{}
	for cur := end; cur != r.start; {
		rev = append(rev, cur)
		p, ok := r.prev[cur]
		if !ok {
			return nil, &NoPathError{Start: r.start, End: end}
		}
		cur = p
	}
	rev = append(rev, r.start)

	path := make(core.Path, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}

// PathCost sums, for every hop of path, the smallest weight among the edges
// joining the two vertices. A path of zero or one vertex costs 0.
func PathCost(g *core.Graph[core.Scalar], path core.Path) (uint64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var total uint64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		best, found := Infinity, false
		for _, c := range g.Neighbors(u) {
			if c.OtherVertex == v && c.Weight[0] <= best {
				best, found = c.Weight[0], true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %s -> %s", ErrBrokenPath, u, v)
		}
		sum, ok := addSaturating(total, best)
		if !ok {
			return Infinity, nil
		}
		total = sum
	}

	return total, nil
}

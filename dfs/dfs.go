// SPDX-License-Identifier: MIT

package dfs

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvlpath/core"
)

// walker holds the backtracking state of one enumeration. It is never
// shared between calls.
type walker[W core.Weight] struct {
	graph   *core.Graph[W]          // read-only input
	end     core.VertexID           // destination
	opts    Options                 // resolved options
	visited sets.Set[core.VertexID] // vertices on the in-progress path
	path    core.Path               // in-progress path buffer
	emit    func(core.Path) bool    // receives snapshots; false stops the walk
	found   int                     // paths emitted so far
	stopped bool
}

// AllPaths returns every simple path from start to end, each inclusive of
// both endpoints, in discovery order.
//
// The result is never nil. It is empty when end is unreachable or when start
// or end is not a vertex of g. If start == end the single one-vertex path is
// returned, provided start is a vertex of g; AllPaths(g, x, x) for an x
// outside g is empty rather than [x].
func AllPaths[W core.Weight](g *core.Graph[W], start, end core.VertexID, opts ...Option) []core.Path {
	paths := make([]core.Path, 0)
	Walk(g, start, end, func(p core.Path) bool {
		paths = append(paths, p)

		return true
	}, opts...)

	return paths
}

// Count returns the number of simple paths from start to end.
func Count[W core.Weight](g *core.Graph[W], start, end core.VertexID, opts ...Option) int {
	return Walk(g, start, end, func(core.Path) bool { return true }, opts...)
}

// Walk streams every simple path from start to end to fn. Each path handed
// to fn is a private copy. Returning false from fn stops the enumeration.
// Walk returns the number of paths delivered to fn.
func Walk[W core.Weight](g *core.Graph[W], start, end core.VertexID, fn func(core.Path) bool, opts ...Option) int {
	if g == nil || fn == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return 0
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = defaultLogger()
	}

	w := &walker[W]{
		graph:   g,
		end:     end,
		opts:    o,
		visited: sets.New[core.VertexID](),
		path:    make(core.Path, 0, g.VertexCount()),
		emit:    fn,
	}
	w.traverse(start)

	o.Logger.Debug("enumerated {{paths}} paths from {{start}} to {{end}}",
		"paths", w.found, "start", start, "end", end)

	return w.found
}

// traverse extends the in-progress path with id and recurses into its
// neighbors, backtracking afterwards.
func (w *walker[W]) traverse(id core.VertexID) {
	// 1. Already on the path: this would close a cycle.
	if w.stopped || w.visited.Has(id) {
		return
	}

	// 2. Enter.
	w.visited.Insert(id)
	w.path = append(w.path, id)
	defer w.leave(id)

	// 3. Destination reached: record and do not search past it.
	if id == w.end {
		w.found++
		w.opts.Logger.Trace("path {{path}}", "path", w.path)
		if !w.emit(w.path.Clone()) {
			w.stopped = true
		}

		return
	}

	// 4. Depth limit counts edges, i.e. len(path)-1.
	if w.opts.MaxDepth != Unlimited && len(w.path)-1 >= w.opts.MaxDepth {
		return
	}

	// 5. Each distinct neighbor once, in edge order. Parallel edges would
	//    otherwise yield the same vertex path twice.
	expanded := sets.New[core.VertexID]()
	for _, c := range w.graph.Neighbors(id) {
		if expanded.Has(c.OtherVertex) {
			continue
		}
		expanded.Insert(c.OtherVertex)
		w.traverse(c.OtherVertex)
	}
}

// leave pops id from the path and unmarks it so other branches may use it.
func (w *walker[W]) leave(id core.VertexID) {
	w.path = w.path[:len(w.path)-1]
	w.visited.Delete(id)
}

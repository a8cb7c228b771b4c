// SPDX-License-Identifier: MIT

package dijkstra

// State machine:
//
//   - tentative distances: every vertex starts at Infinity except the seed (0);
//   - predecessors: recorded on every strictly improving relaxation;
//   - unvisited set: all vertices; the current vertex leaves it after relaxing
//     its unvisited neighbors;
//   - selection: the unvisited vertex with the smallest tentative distance,
//     ties broken by position in the graph's vertex list.
//
// The loop stops when the unvisited set is empty or when every remaining
// unvisited vertex is at Infinity (nothing left is reachable).
//
// Selection uses a lazy-decrease-key priority queue: an improved distance is
// enqueued again and stale entries are skipped when dequeued.
//
// Complexity:
//
//   - Time:  O(V·E + E log E); Neighbors scans the edge list per finalized vertex.
//   - Space: O(V + E).

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/mandelsoft/logging"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/lvlpath/core"
)

// ShortestPath returns one minimum-cost path from start to end, both
// inclusive.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. start must be a vertex of g (*VertexNotFoundError, Endpoint Start).
//  4. end must be a vertex of g (*VertexNotFoundError, Endpoint End).
//
// If end is unreachable, *NoPathError is returned.
func ShortestPath(g *core.Graph[core.Scalar], start, end core.VertexID, opts ...Option) (core.Path, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}
	if !g.HasVertex(end) {
		return nil, &VertexNotFoundError{Endpoint: End, ID: end}
	}

	return run(g, start, opts).PathTo(end)
}

// Dijkstra runs the full state machine from start and returns the final
// tentative distances and predecessors.
//
// Validation is the same as ShortestPath without the end vertex.
func Dijkstra(g *core.Graph[core.Scalar], start core.VertexID, opts ...Option) (*Result, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}

	return run(g, start, opts), nil
}

// run executes one search on already validated input.
func run(g *core.Graph[core.Scalar], start core.VertexID, opts []Option) *Result {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = defaultLogger()
	}

	// 2) Pick the seed vertex.
	seed := start
	if cfg.Seed == SeedFirstVertex {
		seed = g.Vertices()[0].ID
	}

	r := newRunner(g, seed, cfg.Logger.WithValues("start", start, "seed", seed))
	r.init()
	r.process()

	return &Result{
		start: start,
		seed:  seed,
		dist:  r.dist,
		prev:  r.prev,
	}
}

func validate(g *core.Graph[core.Scalar], start core.VertexID) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.IsEmpty() {
		return ErrEmptyGraph
	}
	if !g.HasVertex(start) {
		return &VertexNotFoundError{Endpoint: Start, ID: start}
	}

	return nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	g         *core.Graph[core.Scalar]       // read-only input
	seed      core.VertexID                  // distance-zero vertex
	order     map[core.VertexID]int          // first position in the vertex list, tie-breaker
	dist      map[core.VertexID]uint64       // tentative distances
	prev      map[core.VertexID]core.VertexID // predecessor on the best known path
	unvisited sets.Set[core.VertexID]
	queue     *priorityqueue.Queue // *nodeItem ordered by (dist, order)
	log       logging.Logger
}

// nodeItem is a queue entry; it is stale when dist no longer matches r.dist[id].
type nodeItem struct {
	id    core.VertexID
	dist  uint64
	order int
}

func byDistanceThenOrder(a, b interface{}) int {
	x, y := a.(*nodeItem), b.(*nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.order < y.order:
		return -1
	case x.order > y.order:
		return 1
	default:
		return 0
	}
}

func newRunner(g *core.Graph[core.Scalar], seed core.VertexID, log logging.Logger) *runner {
	n := g.VertexCount()

	return &runner{
		g:         g,
		seed:      seed,
		order:     make(map[core.VertexID]int, n),
		dist:      make(map[core.VertexID]uint64, n),
		prev:      make(map[core.VertexID]core.VertexID, n),
		unvisited: sets.New[core.VertexID](),
		queue:     priorityqueue.NewWith(byDistanceThenOrder),
		log:       log,
	}
}

// init sets every distance to Infinity, the seed to 0, and enqueues the seed.
func (r *runner) init() {
	for i, id := range r.g.VertexIDs() {
		if _, seen := r.order[id]; !seen {
			r.order[id] = i
		}
		r.dist[id] = Infinity
		r.unvisited.Insert(id)
	}
	r.dist[r.seed] = 0
	r.queue.Enqueue(&nodeItem{id: r.seed, dist: 0, order: r.order[r.seed]})

	r.log.Debug("running dijkstra over {{vertices}} vertices", "vertices", r.unvisited.Len())
}

// process is the main loop: finalize the closest unvisited vertex, relax its
// unvisited neighbors, repeat.
func (r *runner) process() {
	for r.unvisited.Len() > 0 {
		u, ok := r.next()
		if !ok {
			// Every remaining vertex is at Infinity: unreachable from the seed.
			r.log.Debug("{{remaining}} vertices unreachable", "remaining", r.unvisited.Len())
			return
		}
		r.relax(u)
		r.unvisited.Delete(u)
		r.log.Trace("finalized {{vertex}} at distance {{distance}}", "vertex", u, "distance", r.dist[u])
	}
}

// next dequeues the closest unvisited vertex, skipping stale entries.
func (r *runner) next() (core.VertexID, bool) {
	for !r.queue.Empty() {
		v, _ := r.queue.Dequeue()
		item := v.(*nodeItem)
		if !r.unvisited.Has(item.id) || item.dist != r.dist[item.id] {
			continue
		}

		return item.id, true
	}

	return core.VertexID{}, false
}

// relax improves the tentative distance of every unvisited neighbor of u.
func (r *runner) relax(u core.VertexID) {
	du := r.dist[u]
	for _, c := range r.g.Neighbors(u) {
		v := c.OtherVertex
		if !r.unvisited.Has(v) {
			continue
		}
		nd, ok := addSaturating(du, c.Weight[0])
		if !ok || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.queue.Enqueue(&nodeItem{id: v, dist: nd, order: r.order[v]})
	}
}

// addSaturating returns a+b, or (Infinity, false) when the sum reaches Infinity.
func addSaturating(a, b uint64) (uint64, bool) {
	if a >= Infinity-b {
		return Infinity, false
	}

	return a + b, true
}

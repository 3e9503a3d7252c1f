package dijkstra

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathtrace/core"
)

// runner holds the mutable state for a single Dijkstra execution.
// It is shared by Trace (goal-directed, observable) and Dijkstra (all targets).
type runner struct {
	g       *core.Graph       // The input graph; read-only within a run.
	options Options           // Source and thresholds.
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	order   []string          // Vertex IDs, sorted; fixed for the run.
}

// validateGraph checks g and the presence of each id, then pre-scans weights.
func validateGraph(g *core.Graph, ids ...string) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, id := range ids {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// newRunner sets dist[v] = Infinity for every vertex, dist[Source] = 0 and
// seeds the heap with (0, Source).
func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	V := len(vertices)
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
		order:   vertices,
	}
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.dist[cfg.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

// popNext pops entries until it finds an unvisited vertex, marks it visited
// and returns it. Stale entries are discarded silently. ok is false once the
// heap is empty or the next distance exceeds MaxDistance.
func (r *runner) popNext() (u string, ok bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return "", false
		}
		r.visited[item.id] = true

		return item.id, true
	}

	return "", false
}

// edgesFrom returns the traversable edges leaving u in insertion order.
func (r *runner) edgesFrom(u string) []*core.Edge {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		// u came out of the heap, so it is a vertex of the graph.
		return nil
	}

	return edges
}

// relax tries u→v with weight w. It returns the candidate distance and
// whether it strictly improved dist[v]; on improvement dist, prev and the
// heap are updated.
func (r *runner) relax(u, v string, w int64) (alt int64, improved bool) {
	du := r.dist[u]
	if w > Infinity-du {
		return Infinity, false
	}
	alt = du + w
	if alt > r.options.MaxDistance || alt >= r.dist[v] {
		return alt, false
	}
	r.dist[v] = alt
	r.prev[v] = u
	heap.Push(&r.pq, &nodeItem{id: v, dist: alt})

	return alt, true
}

// passable reports whether e may be walked at all. Without a threshold
// every edge is walked, including one of weight Infinity.
func (r *runner) passable(e *core.Edge) bool {
	t := r.options.InfEdgeThreshold
	return t == Infinity || e.Weight < t
}

// pathTo follows prev links back from goal. Returns nil if goal is unreached.
func (r *runner) pathTo(goal string) []string {
	if r.dist[goal] == Infinity {
		return nil
	}
	path := []string{goal}
	for cur := goal; cur != r.options.Source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// snapshot copies the distance map and derives the sorted visited and
// frontier sets.
func (r *runner) snapshot() (dist map[string]int64, visited, frontier []string) {
	dist = make(map[string]int64, len(r.dist))
	for v, d := range r.dist {
		dist[v] = d
	}
	visited = make([]string, 0, len(r.visited))
	frontier = make([]string, 0)
	for _, v := range r.order {
		switch {
		case r.visited[v]:
			visited = append(visited, v)
		case r.dist[v] != Infinity:
			frontier = append(frontier, v)
		}
	}

	return dist, visited, frontier
}

// containsSorted is a binary search over a sorted slice.
func containsSorted(ids []string, id string) bool {
	i := sort.SearchStrings(ids, id)
	return i < len(ids) && ids[i] == id
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
// We use the “lazy-decrease-key” approach: a shorter distance pushes a new
// entry and the outdated one is ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// SPDX-License-Identifier: MIT

// Package dijkstra finds the cheapest Start→Finish route in a core road system.
//
// The search is Dijkstra's algorithm restricted to enabled (non-crashed) nodes:
//
//   - distance[Start] = 0, every other node starts at +∞.
//   - The frontier is a min-heap ordered by (tentative distance, node ID), so the
//     currently-closest unfinalized node is always expanded next and ties are
//     broken by the smaller ID. Improved distances are pushed again and stale
//     heap entries are skipped when popped ("lazy decrease-key").
//   - Relaxing an edge into Finish records the best known finish distance; Finish
//     itself is never expanded.
//   - Any popped node farther than the best known finish distance is skipped.
//     With non-negative weights such a node cannot improve the result.
//
// If Start or Finish is crashed the search returns an empty path immediately.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the distance/predecessor maps and heap entries.
//
// Thread safety: the graph must not be mutated while a search runs. Distinct
// searches over the same graph may run concurrently.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// Finder is the Dijkstra-based PathFinder.
type Finder struct {
	opts Options
}

var _ PathFinder = (*Finder)(nil)

// New returns a Finder configured with opts applied over DefaultOptions.
func New(opts ...Option) *Finder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder{opts: cfg}
}

// FindShortestPath is a convenience wrapper around New().FindShortestPath.
func FindShortestPath(g *core.Graph) ([]*core.Node, error) {
	return New().FindShortestPath(g)
}

// FindShortestPath returns the Start→Finish node sequence, or an empty slice
// when Finish cannot be reached.
func (f *Finder) FindShortestPath(g *core.Graph) ([]*core.Node, error) {
	res, err := f.Search(g)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs the algorithm and reports the path together with its cost and
// work counters.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have a Start node (ErrNoStart).
//  3. g must have a Finish node (ErrNoFinish).
func (f *Finder) Search(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	start, ok := g.Start()
	if !ok {
		return nil, ErrNoStart
	}
	finish, ok := g.Finish()
	if !ok {
		return nil, ErrNoFinish
	}

	empty := &Result{Path: []*core.Node{}, Cost: core.Infinity}
	if start.Disabled() || finish.Disabled() {
		return empty, nil
	}
	// A node holds one role, so this only triggers if roles ever become composable.
	if start == finish {
		return &Result{Path: []*core.Node{start}, Cost: 0}, nil
	}

	r := &runner{
		opts:   f.opts,
		start:  start,
		finish: finish,
		best:   core.Infinity,
		dist:   make(map[*core.Node]float64),
		prev:   make(map[*core.Node]*core.Node),
		done:   make(map[*core.Node]bool),
		res:    empty,
	}
	r.init()
	r.process()

	return r.extract()
}

// runner holds the mutable state for a single search.
type runner struct {
	opts   Options
	start  *core.Node
	finish *core.Node
	best   float64 // best known finish distance

	dist map[*core.Node]float64    // absent ⇒ +∞
	prev map[*core.Node]*core.Node // predecessor on the best known route
	done map[*core.Node]bool       // finalized nodes
	pq   nodePQ

	res *Result
}

func (r *runner) distance(n *core.Node) float64 {
	if d, ok := r.dist[n]; ok {
		return d
	}

	return core.Infinity
}

// init seeds the frontier with Start at distance zero.
func (r *runner) init() {
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

func (r *runner) push(n *core.Node, d float64) {
	heap.Push(&r.pq, &nodeItem{node: n, dist: d})
}

// process pops the closest unfinalized node until the frontier is empty.
// Only finite distances are ever pushed, so an empty heap also covers the
// "minimum frontier distance is infinite" stop condition.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node

		// stale entry: u was finalized or improved after this push
		if r.done[u] || item.dist > r.distance(u) {
			continue
		}
		r.done[u] = true

		if r.opts.Prune && item.dist > r.best {
			r.res.Pruned++
			continue
		}

		r.res.Expanded++
		r.opts.OnExpand(u, item.dist)
		r.relax(u)
	}
}

// relax improves the distance of every enabled neighbor of u.
func (r *runner) relax(u *core.Node) {
	du := r.dist[u]
	for _, nb := range u.Edges().Neighbors() {
		v := nb.Node
		if v.Disabled() {
			continue
		}

		nd := du + nb.Weight
		improved := nd < r.distance(v)
		if improved {
			r.dist[v] = nd
			r.prev[v] = u
		}

		if v == r.finish {
			// Finish leaves the frontier on first contact and is never expanded.
			r.done[v] = true
			if d := r.dist[v]; d < r.best {
				r.best = d
			}
			continue
		}
		if improved {
			r.push(v, nd)
		}
	}
}

// extract walks predecessor links from Finish back to Start.
func (r *runner) extract() (*Result, error) {
	cost := r.distance(r.finish)
	if cost == core.Infinity {
		return r.res, nil
	}

	path := []*core.Node{r.finish}
	for n := r.finish; n != r.start; {
		p, ok := r.prev[n]
		if !ok || len(path) > len(r.dist) {
			return nil, fmt.Errorf("dijkstra: broken predecessor chain at %s", n)
		}
		path = append(path, p)
		n = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	r.res.Path = path
	r.res.Cost = cost

	return r.res, nil
}

// nodeItem is a frontier entry: a node and the distance it was pushed with.
type nodeItem struct {
	node *core.Node
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, node ID).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node.ID() < pq[j].node.ID()
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

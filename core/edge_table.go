// SPDX-License-Identifier: MIT
// File: edge_table.go
// Role: Per-node outgoing edge table.
// Determinism:
//   - Neighbors() and All() yield neighbors sorted by ID ascending.
// Concurrency:
//   - Reads share the owning Graph's RWMutex (read lock); only Graph.Link writes.

package core

import (
	"iter"
	"sort"
	"sync"
)

// Neighbor pairs an adjacent node with the weight of the connecting edge.
type Neighbor struct {
	Node   *Node
	Weight float64
}

// EdgeTable maps neighbor nodes to edge weights for a single node.
// The zero value is not usable; tables are allocated by Graph.CreateNode.
type EdgeTable struct {
	mu    *sync.RWMutex // owning Graph's lock
	links map[*Node]float64
}

func newEdgeTable(mu *sync.RWMutex) *EdgeTable {
	return &EdgeTable{mu: mu, links: make(map[*Node]float64)}
}

// Weight returns the weight of the edge to n, or Infinity if there is none.
// Complexity: O(1).
func (t *EdgeTable) Weight(n *Node) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if w, ok := t.links[n]; ok {
		return w
	}

	return Infinity
}

// Has reports whether an edge to n exists.
// Complexity: O(1).
func (t *EdgeTable) Has(n *Node) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.links[n]

	return ok
}

// Len returns the number of neighbors.
func (t *EdgeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.links)
}

// Neighbors returns a snapshot of all neighbors sorted by node ID.
// Complexity: O(d·log d).
func (t *EdgeTable) Neighbors() []Neighbor {
	t.mu.RLock()
	out := make([]Neighbor, 0, len(t.links))
	for n, w := range t.links {
		out = append(out, Neighbor{Node: n, Weight: w})
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Node.id < out[j].Node.id })

	return out
}

// All returns a restartable sequence over (neighbor, weight) pairs in ID order.
// Each range takes a fresh snapshot, so the table may be read while ranging.
func (t *EdgeTable) All() iter.Seq2[*Node, float64] {
	return func(yield func(*Node, float64) bool) {
		for _, nb := range t.Neighbors() {
			if !yield(nb.Node, nb.Weight) {
				return
			}
		}
	}
}

// set inserts or overwrites the entry for n. Caller holds the write lock.
func (t *EdgeTable) set(n *Node, w float64) {
	t.links[n] = w
}

// has is the lock-free variant of Has for callers already holding the lock.
func (t *EdgeTable) has(n *Node) bool {
	_, ok := t.links[n]

	return ok
}

// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: Link/EdgeCount/Edges.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc, each undirected edge once.
// Concurrency:
//   - Link under the write lock; both mirrored entries are inserted before it is released.

package core

import (
	"fmt"
	"math"
	"sort"
)

// ValidWeight reports whether w can be stored on an edge: finite and non-negative.
func ValidWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}

// Link connects a and b with an undirected edge of the given weight.
//
// Steps:
//  1. Reject nil endpoints (ErrNilNode) and bad weights (ErrInvalidWeight).
//  2. Lock, then verify both endpoints are owned by g (ErrCrossGraph).
//  3. Insert a→b and b→a. An existing pair is overwritten in both directions.
//
// Complexity: O(1).
func (g *Graph) Link(a, b *Node, weight float64) error {
	if a == nil || b == nil {
		return ErrNilNode
	}
	if !ValidWeight(weight) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.owns(a) || !g.owns(b) {
		return fmt.Errorf("%w: %d—%d", ErrCrossGraph, a.id, b.id)
	}

	if !a.edges.has(b) {
		g.edgeCount++
	}
	a.edges.set(b, weight)
	b.edges.set(a, weight)

	return nil
}

// EdgeCount returns the number of undirected edges (a self-link counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge once, with From <= To, sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for _, n := range g.nodes {
		for nb, w := range n.edges.links {
			if n.id <= nb.id {
				out = append(out, Edge{From: n.id, To: nb.id, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

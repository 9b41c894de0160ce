// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and All() enumerate nodes sorted by ID ascending.
//
// Concurrency:
//   - CreateNode under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"iter"
	"sort"
)

// ID returns the node's identifier.
func (n *Node) ID() int { return n.id }

// Disabled reports whether the node is crashed.
func (n *Node) Disabled() bool { return n.disabled }

// Role returns the node's role.
func (n *Node) Role() Role { return n.role }

// Edges returns the node's edge table.
func (n *Node) Edges() *EdgeTable { return n.edges }

// IsLinkedTo reports whether n has an edge to other.
func (n *Node) IsLinkedTo(other *Node) bool { return n.edges.Has(other) }

// String renders the node as "#<id>" with role and crash markers, e.g. "#3(finish,crashed)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch {
	case n.role != Normal && n.disabled:
		return fmt.Sprintf("#%d(%s,crashed)", n.id, n.role)
	case n.role != Normal:
		return fmt.Sprintf("#%d(%s)", n.id, n.role)
	case n.disabled:
		return fmt.Sprintf("#%d(crashed)", n.id)
	default:
		return fmt.Sprintf("#%d", n.id)
	}
}

// CreateNode registers a new node with the given ID.
//
// Steps:
//  1. Build the node from opts (default: enabled, Normal).
//  2. Under the write lock, reject a used ID (ErrDuplicateID).
//  3. Reject a second Start or Finish (ErrRoleConflict).
//  4. Register the node and record the role ID.
//
// Validation happens before any mutation, so a failed call leaves the node set
// untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateNode(id int, opts ...NodeOption) (*Node, error) {
	n := &Node{id: id, role: Normal, owner: g}
	for _, opt := range opts {
		opt(n)
	}
	n.edges = newEdgeTable(&g.mu)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("%w: id=%d", ErrDuplicateID, id)
	}
	switch n.role {
	case Start:
		if g.hasStart {
			return nil, fmt.Errorf("%w: multiple start nodes (%d, %d)", ErrRoleConflict, g.startID, id)
		}
		g.startID, g.hasStart = id, true
	case Finish:
		if g.hasFinish {
			return nil, fmt.Errorf("%w: multiple finish nodes (%d, %d)", ErrRoleConflict, g.finishID, id)
		}
		g.finishID, g.hasFinish = id, true
	}
	g.nodes[id] = n

	return n, nil
}

// Lookup returns the node with the given ID.
// Complexity: O(1).
func (g *Graph) Lookup(id int) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]

	return n, ok
}

// Contains reports whether g owns n: the node registered under n's ID must be n itself.
// A node from another Graph with a coincident ID is not contained.
func (g *Graph) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.owns(n)
}

// owns is Contains without locking.
func (g *Graph) owns(n *Node) bool {
	cur, ok := g.nodes[n.id]

	return ok && cur == n
}

// Start returns the Start node, if any.
func (g *Graph) Start() (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasStart {
		return nil, false
	}

	return g.nodes[g.startID], true
}

// Finish returns the Finish node, if any.
func (g *Graph) Finish() (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasFinish {
		return nil, false
	}

	return g.nodes[g.finishID], true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes returns all nodes sorted by ID.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// All returns a restartable sequence over all nodes in ID order. Every range
// works on a fresh snapshot taken when iteration begins.
func (g *Graph) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range g.Nodes() {
			if !yield(n) {
				return
			}
		}
	}
}

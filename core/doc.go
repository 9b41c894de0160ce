// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory road system used by the
// loader and the shortest-path search.
//
// A road system G = (V,E) is a weighted, undirected graph:
//
//   - Nodes carry a caller-assigned integer ID, a disabled ("crashed") flag and
//     a Role (Normal, Start or Finish). All three are fixed at creation time.
//   - Every node owns an EdgeTable mapping neighbor nodes to weights. An
//     undirected edge is realized as two mirrored entries with equal weight.
//   - Weights are finite and non-negative. Looking up a missing neighbor yields
//     Infinity, which the search treats as "unreachable in one hop".
//
// Ownership:
//
//	Nodes are created only through Graph.CreateNode and never leave their Graph.
//	Edges are created only through Graph.Link, which checks that both endpoints
//	belong to the receiving Graph before touching either EdgeTable.
//	The Graph keeps the Start and Finish nodes as IDs into its own node map, not
//	as separate references.
//
// Invariants (hold at every observable point):
//
//  1. Node IDs are unique within a Graph.
//  2. At most one node has Role Start and at most one has Role Finish.
//  3. Edges are symmetric: a→b with weight w implies b→a with weight w.
//  4. Weights are never negative, NaN or Infinity.
//  5. Edges only connect nodes owned by the same Graph.
//
// Core Methods:
//
//	NewGraph() *Graph
//	CreateNode(id int, opts ...NodeOption) (*Node, error) // O(1)
//	Link(a, b *Node, weight float64) error                // O(1)
//	Lookup(id int) (*Node, bool)                          // O(1)
//	Contains(n *Node) bool                                // O(1)
//	Start() / Finish() (*Node, bool)                      // O(1)
//	Nodes() []*Node                                       // O(V·log V), sorted by ID
//	All() iter.Seq[*Node]                                 // restartable, sorted by ID
//	Edges() []Edge                                        // O(E·log E), each edge once
//
// Concurrency:
//
//	A single sync.RWMutex per Graph guards the node map, the role IDs and every
//	EdgeTable owned by the Graph. CreateNode and Link take the write lock, so two
//	concurrent CreateNode calls can never both register the same ID and Link
//	always observes fully-formed endpoints. Queries take the read lock.
//	Searches are read-only and must not be interleaved with mutation.
//
// Errors:
//
//	ErrDuplicateID    – CreateNode with an ID already in use
//	ErrRoleConflict   – a second Start or a second Finish node
//	ErrNilNode        – Link called with a nil node
//	ErrCrossGraph     – Link endpoints not owned by this Graph
//	ErrInvalidWeight  – negative, NaN or infinite weight
package core

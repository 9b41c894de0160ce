// SPDX-License-Identifier: MIT
// File: types.go
// Role: Node, Role, Edge, Graph declarations, sentinel errors and constructors.

package core

import (
	"errors"
	"math"
	"strings"
	"sync"
)

// Infinity is the weight reported for absent edges and the distance of
// unreachable nodes. It is never a valid edge weight.
var Infinity = math.Inf(1)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateID indicates CreateNode was called with an ID already in use.
	ErrDuplicateID = errors.New("core: node ID already used by another node")

	// ErrRoleConflict indicates a second Start or a second Finish node.
	ErrRoleConflict = errors.New("core: role already taken by another node")

	// ErrNilNode indicates a nil *Node was passed to Link.
	ErrNilNode = errors.New("core: node is nil")

	// ErrCrossGraph indicates Link endpoints that are not owned by the receiving Graph.
	ErrCrossGraph = errors.New("core: cannot link nodes from a different road system")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("core: weight must be a finite non-negative number")
)

// Role marks the designated endpoints of a road system.
type Role int

const (
	// Normal nodes are ordinary intersections.
	Normal Role = iota
	// Start is the source of the shortest-path search.
	Start
	// Finish is the target of the shortest-path search.
	Finish
)

// String returns the lower-case name used by the description format.
func (r Role) String() string {
	switch r {
	case Start:
		return "start"
	case Finish:
		return "finish"
	default:
		return "normal"
	}
}

// ParseRole maps a role marker to a Role. Matching is case-insensitive and
// anything unrecognized defaults to Normal.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return Start
	case "finish":
		return Finish
	default:
		return Normal
	}
}

// Node is a road-system intersection. Its ID, disabled flag and Role are
// fixed when the owning Graph creates it.
type Node struct {
	id       int
	disabled bool
	role     Role
	edges    *EdgeTable
	owner    *Graph
}

// Edge is a read-only snapshot of one undirected edge, reported once with From < To
// (From == To for a self-link).
type Edge struct {
	From   int
	To     int
	Weight float64
}

// NodeOption configures a node before the Graph registers it.
type NodeOption func(n *Node)

// WithDisabled marks the node as crashed; the search never passes through it.
func WithDisabled() NodeOption {
	return func(n *Node) { n.disabled = true }
}

// WithRole assigns the node's role. Default is Normal.
func WithRole(r Role) NodeOption {
	return func(n *Node) { n.role = r }
}

// Graph owns a set of nodes keyed by ID together with their edge tables.
//
// mu guards nodes, the role IDs and the links map of every owned EdgeTable.
// Start and Finish are held as IDs into nodes (hasStart/hasFinish tell whether set).
type Graph struct {
	mu sync.RWMutex

	nodes map[int]*Node

	startID   int
	finishID  int
	hasStart  bool
	hasFinish bool

	edgeCount int
}

// NewGraph creates an empty road system.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

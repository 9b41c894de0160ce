// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core road system,
// returning hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Crashed nodes are never entered unless WithIncludeCrashed is given.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Hooks: OnEnqueue and OnVisit (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	Edge weights are ignored, which makes BFS the reachability oracle for the
//	weighted search: `roadpath validate` uses it to tell whether Finish can be
//	reached from Start at all, and the dijkstra tests use it to cross-check
//	"no path" answers.
//
// Determinism
//
//	core.EdgeTable.Neighbors returns neighbors sorted by ID, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log deg) (neighbor lists are sorted per expansion)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrStartNodeNil, ErrForeignNode for invalid input.
//   - ErrOptionViolation for invalid options (negative MaxDepth).
//   - ctx.Err() on cancellation and wrapped OnVisit errors.
package bfs

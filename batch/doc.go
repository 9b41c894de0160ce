// SPDX-License-Identifier: MIT

// Package batch maps road-system descriptions to user-facing results.
//
// For every source independently the Processor loads the description, runs
// the shortest-path search and reports one of:
//
//   - StatusFound:  the node IDs of the route, joined by the separator ("1, 4, 2, 3")
//   - StatusNoPath: the no-path text ("No path found")
//   - StatusFailed: the load error reason, verbatim
//
// Sources run concurrently up to the configured worker limit. Results keep
// the input order and one failing source never affects the others. A
// cancelled context marks every source that has not started as failed.
package batch

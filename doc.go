// SPDX-License-Identifier: MIT

// Package roadpath finds the cheapest route through a road system whose
// intersections may be crashed.
//
// A road system is an undirected, weighted graph with one Start and one
// Finish node. Crashed nodes stay in the graph but the search never passes
// through them.
//
// Packages:
//
//	core/      — Graph, Node, EdgeTable: thread-safe construction with invariants
//	loader/    — XML descriptions in and out, typed load errors
//	dijkstra/  — Start→Finish shortest path with finish-distance pruning
//	bfs/       — hop-count reachability over enabled nodes
//	builder/   — deterministic chain, grid and random road systems
//	batch/     — concurrent load-and-solve of many sources with stable results
//	config/    — TOML run settings
//	telemetry/ — OpenTelemetry tracer provider setup
//
// Quick example:
//
//	g, err := loader.LoadFromPath("city.xml")
//	if err != nil {
//		// *loader.LoadError; Reason is the user-facing text
//	}
//	path, err := dijkstra.FindShortestPath(g)
//	// len(path) == 0 means "No path found"
//
// The roadpath command (cmd/roadpath) wraps these packages:
//
//	roadpath solve samples/*.xml
//	roadpath validate city.xml
//	roadpath generate --kind grid --rows 10 --cols 10 --seed 3 -o grid.xml
package roadpath

// SPDX-License-Identifier: MIT

// Package builder generates deterministic road systems for tests, benchmarks
// and the `roadpath generate` command.
//
// One orchestrator, Build(con, opts...), creates a fresh core.Graph, resolves
// the builder configuration and runs a single Constructor. Constructors number
// their nodes 1..n; Start and Finish default to the first and the last node and
// can be moved with WithEndpoints. Crashed nodes are chosen explicitly
// (WithCrashed) or drawn with WithCrashRate from the seeded RNG.
//
// Topologies:
//
//	Chain(n)          1—2—…—n
//	Grid(rows, cols)  4-neighborhood grid, IDs row-major starting at 1
//	Random(n, p)      each unordered pair linked with probability p
//
// Determinism: the same constructor, options and seed always produce the same
// graph. Without WithSeed every weight is 1 and Random/WithCrashRate fail with
// ErrNeedRandSource.
package builder

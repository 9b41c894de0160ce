// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/builder"
)

// BenchmarkBFS_Grid runs BFS on an M×M grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	g, err := builder.Build(builder.Grid(M, M))
	if err != nil {
		b.Fatal(err)
	}
	start, _ := g.Start()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random road system.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	g, err := builder.Build(builder.Random(2000, 0.002), builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	start, _ := g.Start()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

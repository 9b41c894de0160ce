// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/dijkstra"
)

func BenchmarkSearch_Grid(b *testing.B) {
	g, err := builder.Build(builder.Grid(100, 100), builder.WithSeed(1), builder.WithCrashRate(0.1))
	if err != nil {
		b.Fatal(err)
	}
	for _, tc := range []struct {
		name string
		f    *dijkstra.Finder
	}{
		{"Pruned", dijkstra.New()},
		{"Full", dijkstra.New(dijkstra.WithoutPruning())},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = tc.f.Search(g)
			}
		})
	}
}

// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// ExampleGraph_Link builds a three-node road and prints its symmetric edges.
func ExampleGraph_Link() {
	g := core.NewGraph()
	a, _ := g.CreateNode(1, core.WithRole(core.Start))
	b, _ := g.CreateNode(2)
	c, _ := g.CreateNode(3, core.WithRole(core.Finish))

	_ = g.Link(a, b, 1)
	_ = g.Link(b, c, 2.5)

	for _, e := range g.Edges() {
		fmt.Printf("%d—%d w=%g\n", e.From, e.To, e.Weight)
	}
	fmt.Println(c.Edges().Weight(b) == b.Edges().Weight(c))
	// Output:
	// 1—2 w=1
	// 2—3 w=2.5
	// true
}

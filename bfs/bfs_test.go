// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/core"
)

func ids(nodes []*core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

func mustNode(t *testing.T, g *core.Graph, id int) *core.Node {
	t.Helper()
	n, ok := g.Lookup(id)
	if !ok {
		t.Fatalf("node %d missing", id)
	}
	return n
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g, err := builder.Build(builder.Chain(3))
	if err != nil {
		t.Fatal(err)
	}
	start := mustNode(t, g, 1)

	if _, err := bfs.BFS(nil, start); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.BFS(g, nil); !errors.Is(err, bfs.ErrStartNodeNil) {
		t.Errorf("nil start: want ErrStartNodeNil, got %v", err)
	}
	other := core.NewGraph()
	if _, err := bfs.BFS(other, start); !errors.Is(err, bfs.ErrForeignNode) {
		t.Errorf("foreign start: want ErrForeignNode, got %v", err)
	}
	if _, err := bfs.BFS(g, start, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_GridDepths checks layering on a 3×3 grid.
func TestBFS_GridDepths(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, mustNode(t, g, 1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 4, 3, 5, 7, 6, 8, 9}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("Order = %v; want %v", ids(res.Order), want)
	}
	if got := res.Depth[9]; got != 4 {
		t.Errorf("Depth[9] = %d; want 4", got)
	}
}

// TestBFS_SkipsCrashed ensures crashed nodes block traversal by default.
func TestBFS_SkipsCrashed(t *testing.T) {
	g, err := builder.Build(builder.Chain(4), builder.WithCrashed(2))
	if err != nil {
		t.Fatal(err)
	}
	start := mustNode(t, g, 1)

	res, _ := bfs.BFS(g, start)
	if want := []int{1}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("default: got %v; want %v", ids(res.Order), want)
	}
	if res.Reached(4) {
		t.Error("node 4 must be unreachable through crashed node 2")
	}

	res, _ = bfs.BFS(g, start, bfs.WithIncludeCrashed())
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("include crashed: got %v; want %v", ids(res.Order), want)
	}
}

// TestBFS_CrashedStart returns an empty walk.
func TestBFS_CrashedStart(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode(1, core.WithDisabled())
	b, _ := g.CreateNode(2)
	_ = g.Link(a, b, 1)

	res, err := bfs.BFS(g, a)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 0 {
		t.Errorf("Order = %v; want empty", ids(res.Order))
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero, and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g, _ := builder.Build(builder.Chain(3))
	start := mustNode(t, g, 1)

	cases := []struct {
		depth int
		want  []int
	}{
		{1, []int{1, 2}},
		{0, []int{1, 2, 3}},
		{10, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		res, _ := bfs.BFS(g, start, bfs.WithMaxDepth(tc.depth))
		if !reflect.DeepEqual(ids(res.Order), tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, ids(res.Order), tc.want)
		}
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g, _ := builder.Build(builder.Chain(3))
	res, _ := bfs.BFS(g, mustNode(t, g, 1),
		bfs.WithFilterNeighbor(func(curr, nbr *core.Node) bool {
			return !(curr.ID() == 2 && nbr.ID() == 3)
		}),
	)
	if want := []int{1, 2}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("FilterNeighbor: got %v; want %v", ids(res.Order), want)
	}
}

// TestBFS_SelfLink ensures a self-link does not enqueue twice.
func TestBFS_SelfLink(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode(1)
	b, _ := g.CreateNode(2)
	_ = g.Link(a, a, 1)
	_ = g.Link(a, b, 1)

	res, _ := bfs.BFS(g, a)
	if want := []int{1, 2}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("SelfLink: got %v; want %v", ids(res.Order), want)
	}
}

// TestBFS_HooksAndPath asserts hook order and PathTo reconstruction.
func TestBFS_HooksAndPath(t *testing.T) {
	g, _ := builder.Build(builder.Chain(3))

	var enq, vis []string
	res, err := bfs.BFS(g, mustNode(t, g, 1),
		bfs.WithOnEnqueue(func(n *core.Node, d int) { enq = append(enq, strconv.Itoa(n.ID())+"@"+strconv.Itoa(d)) }),
		bfs.WithOnVisit(func(n *core.Node, d int) error {
			vis = append(vis, strconv.Itoa(n.ID())+"@"+strconv.Itoa(d))
			return nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1@0", "2@1", "3@2"}
	if !reflect.DeepEqual(enq, want) || !reflect.DeepEqual(vis, want) {
		t.Errorf("hooks: enq=%v vis=%v; want %v", enq, vis, want)
	}

	path, err := res.PathTo(3)
	if err != nil || !reflect.DeepEqual(path, []int{1, 2, 3}) {
		t.Errorf("PathTo(3) = %v, %v; want [1 2 3]", path, err)
	}
	if _, err := res.PathTo(42); err == nil {
		t.Error("PathTo(42): expected error")
	}
}

// TestBFS_VisitError propagates hook errors.
func TestBFS_VisitError(t *testing.T) {
	g, _ := builder.Build(builder.Chain(3))
	stop := errors.New("stop")
	_, err := bfs.BFS(g, mustNode(t, g, 1), bfs.WithOnVisit(func(n *core.Node, _ int) error {
		if n.ID() == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g, _ := builder.Build(builder.Chain(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, mustNode(t, g, 1), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.

package core_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/core"
)

// TestConcurrentCreateNode_SameID ensures exactly one of many racing
// CreateNode calls with the same ID succeeds.
func TestConcurrentCreateNode_SameID(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	var wins atomic.Int32
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			if _, err := g.CreateNode(42); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
	require.Equal(t, 1, g.NodeCount())
}

// TestConcurrentCreateNode_StartRole ensures only one Start node can be registered.
func TestConcurrentCreateNode_StartRole(t *testing.T) {
	g := core.NewGraph()
	const num = 100
	var wg sync.WaitGroup
	var wins atomic.Int32
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.CreateNode(id, core.WithRole(core.Start)); err == nil {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
	require.Equal(t, 1, g.NodeCount())
}

// TestConcurrentLink links a hub to many spokes while readers scan edges;
// every edge must end up symmetric.
func TestConcurrentLink(t *testing.T) {
	g := core.NewGraph()
	hub, err := g.CreateNode(0)
	require.NoError(t, err)

	const spokes = 200
	nodes := make([]*core.Node, spokes)
	for i := range nodes {
		nodes[i], err = g.CreateNode(i + 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(2 * spokes)
	for i := 0; i < spokes; i++ {
		go func(n *core.Node, w float64) {
			defer wg.Done()
			_ = g.Link(hub, n, w)
		}(nodes[i], float64(i))

		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = hub.Edges().Neighbors()
		}()
	}
	wg.Wait()

	require.Equal(t, spokes, g.EdgeCount())
	require.Equal(t, spokes, hub.Edges().Len())
	for i, n := range nodes {
		require.Equal(t, float64(i), n.Edges().Weight(hub))
		require.Equal(t, float64(i), hub.Edges().Weight(n))
	}
}

// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/core"
)

func TestChain(t *testing.T) {
	g, err := builder.Build(builder.Chain(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}, g.Edges())

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, 1, start.ID())
	finish, ok := g.Finish()
	require.True(t, ok)
	assert.Equal(t, 4, finish.ID())
}

func TestGrid(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 4), builder.WithEndpoints(2, 11), builder.WithCrashed(6))
	require.NoError(t, err)

	assert.Equal(t, 12, g.NodeCount())
	// rows*(cols-1) horizontal + (rows-1)*cols vertical
	assert.Equal(t, 3*3+2*4, g.EdgeCount())

	start, _ := g.Start()
	finish, _ := g.Finish()
	assert.Equal(t, 2, start.ID())
	assert.Equal(t, 11, finish.ID())

	n6, ok := g.Lookup(6)
	require.True(t, ok)
	assert.True(t, n6.Disabled())
}

func TestRandom_Deterministic(t *testing.T) {
	build := func() []core.Edge {
		g, err := builder.Build(builder.Random(15, 0.3), builder.WithSeed(7), builder.WithCrashRate(0.2))
		require.NoError(t, err)
		return g.Edges()
	}
	first := build()
	assert.Equal(t, first, build())
	for _, e := range first {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 10.0)
	}
}

func TestOptions_OrderIndependent(t *testing.T) {
	weights := func(opts ...builder.Option) []float64 {
		g, err := builder.Build(builder.Chain(6), opts...)
		require.NoError(t, err)
		var ws []float64
		for _, e := range g.Edges() {
			ws = append(ws, e.Weight)
		}
		return ws
	}

	constant := []float64{2.5, 2.5, 2.5, 2.5, 2.5}
	assert.Equal(t, constant, weights(builder.WithConstantWeight(2.5), builder.WithSeed(3)))
	assert.Equal(t, constant, weights(builder.WithSeed(3), builder.WithConstantWeight(2.5)))

	ranged := weights(builder.WithWeightRange(20, 30), builder.WithSeed(3))
	assert.Equal(t, ranged, weights(builder.WithSeed(3), builder.WithWeightRange(20, 30)))
	for _, w := range ranged {
		assert.GreaterOrEqual(t, w, 20.0)
		assert.LessOrEqual(t, w, 30.0)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(builder.Chain(1))
	require.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.Build(builder.Random(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(builder.Random(5, 1.5), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(builder.Chain(3), builder.WithEndpoints(2, 2))
	require.ErrorIs(t, err, builder.ErrBadEndpoint)

	_, err = builder.Build(builder.Chain(3), builder.WithCrashRate(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithWeightRange(5, 1) })
	assert.Panics(t, func() { builder.WithCrashRate(2) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithConstantWeight(-1) })
}

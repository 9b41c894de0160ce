// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic and return sentinel errors instead.

package builder

import "math/rand"

// Deterministic defaults.
const (
	defaultWeight    = 1.0
	defaultMinWeight = 1
	defaultMaxWeight = 10
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng *rand.Rand

	// weightFn draws one edge weight; rng may be nil. Nil selects the
	// default: uniform [1,10] with an RNG, constant 1 without one.
	weightFn func(*rand.Rand) float64

	// start/finish ids; 0 means "first" / "last" node.
	start  int
	finish int

	crashed   map[int]bool
	crashRate float64
}

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{crashed: make(map[int]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightFn == nil {
		if cfg.rng != nil {
			cfg.weightFn = uniformWeight(defaultMinWeight, defaultMaxWeight)
		} else {
			cfg.weightFn = func(*rand.Rand) float64 { return defaultWeight }
		}
	}

	return cfg
}

// WithSeed creates a seeded RNG. Without an explicit weight option,
// weights become integers drawn uniformly from [1,10].
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightRange draws integer weights uniformly from [lo,hi].
// Requires an RNG at build time. Panics if lo < 0 or hi < lo.
func WithWeightRange(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic("builder: WithWeightRange(lo<0 || hi<lo)")
	}
	return func(c *builderConfig) { c.weightFn = uniformWeight(lo, hi) }
}

// WithConstantWeight gives every edge weight w. Panics if w < 0.
func WithConstantWeight(w float64) Option {
	if w < 0 {
		panic("builder: WithConstantWeight(w<0)")
	}
	return func(c *builderConfig) {
		c.weightFn = func(*rand.Rand) float64 { return w }
	}
}

// WithEndpoints chooses the Start and Finish node IDs.
func WithEndpoints(start, finish int) Option {
	return func(c *builderConfig) { c.start, c.finish = start, finish }
}

// WithCrashed marks the given node IDs as crashed.
func WithCrashed(ids ...int) Option {
	return func(c *builderConfig) {
		for _, id := range ids {
			c.crashed[id] = true
		}
	}
}

// WithCrashRate crashes each Normal node independently with probability p.
// Endpoints are never crashed by the rate. Panics if p is outside [0,1].
func WithCrashRate(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithCrashRate(p outside [0,1])")
	}
	return func(c *builderConfig) { c.crashRate = p }
}

// uniformWeight returns a generator of integer weights in [lo,hi].
// Without an RNG it degrades to lo.
func uniformWeight(lo, hi int) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}

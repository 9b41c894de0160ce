// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// api.go — Build orchestrator and topology constructors.
//
// Emission order is fixed: nodes ascending by ID (crash draws happen here),
// then edges in the order documented on each constructor (weight draws happen
// here). Same options and seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// Method tags used in error context.
const (
	methodChain  = "Chain"
	methodGrid   = "Grid"
	methodRandom = "Random"

	minNodes = 2
)

// Constructor populates an empty graph using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph, resolves opts and applies con.
// Errors are wrapped as "Build: %w"; callers branch with errors.Is.
func Build(con Constructor, opts ...Option) (*core.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)
	if err := con(g, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// Chain links nodes 1..n in a line: 1—2, 2—3, …, (n-1)—n.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodChain, n, minNodes, ErrTooFewNodes)
		}
		nodes, err := addNodes(g, cfg, n, methodChain)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, nodes[i], nodes[i+1], methodChain); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid builds a rows×cols grid with IDs r*cols+c+1 (row-major). For each cell
// the right neighbor is linked before the bottom neighbor.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < minNodes {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewNodes)
		}
		nodes, err := addNodes(g, cfg, rows*cols, methodGrid)
		if err != nil {
			return err
		}
		at := func(r, c int) *core.Node { return nodes[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(g, cfg, at(r, c), at(r, c+1), methodGrid); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, cfg, at(r, c), at(r+1, c), methodGrid); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Random links every unordered pair (i<j) independently with probability p,
// visiting pairs in lexicographic order. Requires WithSeed or WithRand.
// The result is not guaranteed to connect Start and Finish.
func Random(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandom, n, minNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandom, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		nodes, err := addNodes(g, cfg, n, methodRandom)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = link(g, cfg, nodes[i], nodes[j], methodRandom); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addNodes creates nodes 1..n with endpoint roles and crash flags applied.
func addNodes(g *core.Graph, cfg builderConfig, n int, method string) ([]*core.Node, error) {
	start, finish := cfg.start, cfg.finish
	if start == 0 {
		start = 1
	}
	if finish == 0 {
		finish = n
	}
	if start < 1 || start > n || finish < 1 || finish > n || start == finish {
		return nil, fmt.Errorf("%s: start=%d finish=%d n=%d: %w", method, start, finish, n, ErrBadEndpoint)
	}
	if cfg.crashRate > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: crash rate: %w", method, ErrNeedRandSource)
	}

	nodes := make([]*core.Node, n)
	for i := range nodes {
		id := i + 1
		var opts []core.NodeOption
		switch id {
		case start:
			opts = append(opts, core.WithRole(core.Start))
		case finish:
			opts = append(opts, core.WithRole(core.Finish))
		default:
			if cfg.crashRate > 0 && cfg.rng.Float64() < cfg.crashRate {
				opts = append(opts, core.WithDisabled())
			}
		}
		if cfg.crashed[id] {
			opts = append(opts, core.WithDisabled())
		}

		node, err := g.CreateNode(id, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: CreateNode(%d): %v: %w", method, id, err, ErrConstructFailed)
		}
		nodes[i] = node
	}

	return nodes, nil
}

func link(g *core.Graph, cfg builderConfig, a, b *core.Node, method string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.Link(a, b, w); err != nil {
		return fmt.Errorf("%s: Link(%d,%d): %v: %w", method, a.ID(), b.ID(), err, ErrConstructFailed)
	}

	return nil
}

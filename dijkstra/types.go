// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/roadpath/core"
)

// Sentinel errors returned by the finder. They signal misuse of the API,
// never "no path": an unreachable Finish yields an empty path and a nil error.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoStart indicates that the graph has no Start node.
	ErrNoStart = errors.New("dijkstra: road system has no start node")

	// ErrNoFinish indicates that the graph has no Finish node.
	ErrNoFinish = errors.New("dijkstra: road system has no finish node")
)

// PathFinder computes a Start→Finish route over a fully built road system.
// An empty slice with a nil error means no route exists.
type PathFinder interface {
	FindShortestPath(g *core.Graph) ([]*core.Node, error)
}

// Result is the outcome of a single search.
//
// Path     – nodes from Start to Finish inclusive; empty if unreachable.
// Cost     – sum of edge weights along Path; core.Infinity if Path is empty.
// Expanded – number of nodes whose edges were relaxed.
// Pruned   – number of popped nodes skipped by the finish-distance bound.
type Result struct {
	Path     []*core.Node
	Cost     float64
	Expanded int
	Pruned   int
}

// Found reports whether a route was found.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// IDs returns the node IDs of Path in order.
func (r *Result) IDs() []int {
	ids := make([]int, len(r.Path))
	for i, n := range r.Path {
		ids[i] = n.ID()
	}

	return ids
}

// Options configures the finder.
//
// Prune   – skip popped nodes farther than the best known finish distance.
// OnExpand – called with each node before its edges are relaxed.
type Options struct {
	Prune    bool
	OnExpand func(n *core.Node, dist float64)
}

// Option represents a functional option for configuring the finder.
type Option func(*Options)

// WithoutPruning disables the finish-distance bound. Results are identical;
// only the amount of work changes.
func WithoutPruning() Option {
	return func(o *Options) { o.Prune = false }
}

// WithOnExpand installs a hook invoked for every expanded node.
// A nil hook is ignored.
func WithOnExpand(fn func(n *core.Node, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns pruning enabled and a no-op expand hook.
func DefaultOptions() Options {
	return Options{
		Prune:    true,
		OnExpand: func(*core.Node, float64) {},
	}
}

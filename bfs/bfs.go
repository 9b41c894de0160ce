// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[*core.Node]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, ignoring weights.
// A crashed start yields an empty result unless WithIncludeCrashed is set.
// Returns ErrGraphNil, ErrStartNodeNil or ErrForeignNode for invalid input,
// ErrOptionViolation for bad options, ctx errors or a wrapped hook error.
func BFS(g *core.Graph, start *core.Node, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start == nil {
		return nil, ErrStartNodeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, ErrForeignNode
	}

	n := g.NodeCount()
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[*core.Node]bool, n),
		res: &BFSResult{
			Order:  make([]*core.Node, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	if start.Disabled() && !o.IncludeCrashed {
		return w.res, nil
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.visited[n] = true
	w.res.Depth[n.ID()] = d
	if parent != nil {
		w.res.Parent[n.ID()] = parent.ID()
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen, allowed neighbor in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range item.node.Edges().Neighbors() {
		v := nb.Node
		if w.visited[v] {
			continue
		}
		if v.Disabled() && !w.opts.IncludeCrashed {
			continue
		}
		if !w.opts.FilterNeighbor(item.node, v) {
			continue
		}
		w.enqueue(v, next, item.node)
	}
}

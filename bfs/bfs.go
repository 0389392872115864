// Package bfs implements the breadth-first walker over a hypercube.
package bfs

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/hypercube/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue deque.Deque[int]
	res   *Result
}

// BFS runs breadth-first search on g starting from node value start.
// Returns ErrGraphNil, core.ErrNodeNotFound, ErrOptionViolation, a context
// error, or the error of the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrNodeNotFound)
	}

	size := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, size),
			Depth:  make([]int, size),
			Parent: make([]int, size),
		},
	}
	for v := 0; v < size; v++ {
		w.res.Depth[v] = unreached
		w.res.Parent[v] = unreached
	}

	w.enqueue(start, 0, unreached)

	return w.res, w.loop()
}

// enqueue records v's depth and parent and appends it to the queue.
func (w *walker) enqueue(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue.PushBack(v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue.PopFront()
		depth := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)

		n, err := w.graph.Node(v)
		if err != nil {
			return fmt.Errorf("bfs: %w", err)
		}
		if err = w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", n.Bits, err)
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("bfs: neighbours of %s: %w", n.Bits, err)
		}
		for _, nbr := range nbrs {
			if w.res.Depth[nbr] == unreached {
				w.enqueue(nbr, depth+1, v)
			}
		}
	}

	return nil
}

// Package astar implements the A* search loop over the hypercube fringe.
package astar

import (
	"fmt"

	"github.com/katalvlaran/hypercube/core"
	"github.com/katalvlaran/hypercube/fringe"
)

// noEdge marks a node without a predecessor in edgeTo.
const noEdge = -1

// ShortestPath returns a minimum-hop path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. start and end must be nodes of g (core.ErrNodeNotFound).
//
// start == end yields a single-node path with zero edges. An unreachable end
// yields core.ErrNoPathFound. g is only read.
//
// Memory: O(V) per call. The fringe is seeded with every node, so a query on
// a 20-cube allocates about a million heap items and map entries (on the
// order of 100 MB) besides the distTo and edgeTo slices, regardless of how
// close end is to start.
func ShortestPath(g *core.Graph, start, end int, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	src, err := g.Node(start)
	if err != nil {
		return nil, fmt.Errorf("astar: start: %w", err)
	}
	dst, err := g.Node(end)
	if err != nil {
		return nil, fmt.Errorf("astar: end: %w", err)
	}

	// 3) Trivial query: nothing to search.
	if start == end {
		return &Result{Path: core.Path{src}}, nil
	}

	// 4) Initialise and run.
	r := newRunner(g, cfg, src, dst)
	if err = r.process(); err != nil {
		return nil, err
	}

	log := g.Logger()
	if r.edgeTo[end] == noEdge {
		log.Debug().Str("start", src.Bits).Str("end", dst.Bits).Int("expanded", r.expanded).Msg("astar: no path")

		return nil, fmt.Errorf("astar: %s→%s: %w", src.Bits, dst.Bits, core.ErrNoPathFound)
	}

	path := r.pathTo(end)
	log.Debug().
		Str("start", src.Bits).
		Str("end", dst.Bits).
		Int("edges", path.EdgeCount()).
		Int("expanded", r.expanded).
		Int("pushed", r.pushed).
		Msg("astar: path found")

	return &Result{Path: path, Expanded: r.expanded, Pushed: r.pushed}, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *core.Graph
	opts     Options
	src      core.Node
	dst      core.Node
	distTo   []int // value → best known hop count from src (fringe.Infinity if unknown)
	edgeTo   []int // value → predecessor on the best known path (noEdge if none)
	open     *fringe.Fringe
	expanded int
	pushed   int
}

// newRunner seeds distTo/edgeTo and a fringe holding every node at Infinity,
// then drops the start node from the fringe.
func newRunner(g *core.Graph, opts Options, src, dst core.Node) *runner {
	size := g.NodeCount()
	keys := make([]int, size)
	distTo := make([]int, size)
	edgeTo := make([]int, size)
	for v := 0; v < size; v++ {
		keys[v] = v
		distTo[v] = fringe.Infinity
		edgeTo[v] = noEdge
	}

	r := &runner{
		g:      g,
		opts:   opts,
		src:    src,
		dst:    dst,
		distTo: distTo,
		edgeTo: edgeTo,
		open:   fringe.New(keys),
	}
	r.distTo[src.Value] = 0
	r.open.Remove(src.Value)

	return r
}

// process expands the start node, then repeatedly pops the lowest f = g + h
// until the target is popped or only unreachable (Infinity) entries remain.
func (r *runner) process() error {
	current := r.src
	var err error
	for {
		if err = r.expand(current); err != nil {
			return err
		}

		e, ok := r.open.Pop()
		if !ok || e.Priority == fringe.Infinity {
			// Exhausted: everything left in the fringe was never reached.
			return nil
		}
		if e.Key == r.dst.Value {
			return nil
		}
		if current, err = r.g.Node(e.Key); err != nil {
			return fmt.Errorf("astar: %w", err)
		}
	}
}

// expand relaxes every edge out of c.
//
// The test g < distTo[nbr] is the same as "g + h(nbr) beats nbr's last pushed
// priority" because h(nbr) is fixed per node, and it can never re-open the
// start node, whose distance is 0.
func (r *runner) expand(c core.Node) error {
	if r.opts.OnExpand != nil {
		if err := r.opts.OnExpand(c); err != nil {
			return fmt.Errorf("astar: OnExpand hook for %s: %w", c.Bits, err)
		}
	}
	r.expanded++

	nbrs, err := r.g.NeighborNodes(c.Value)
	if err != nil {
		return fmt.Errorf("astar: neighbours of %s: %w", c.Bits, err)
	}

	tentative := r.distTo[c.Value] + 1 // unit edge cost
	for _, nbr := range nbrs {
		if tentative >= r.distTo[nbr.Value] {
			continue
		}
		r.distTo[nbr.Value] = tentative
		r.edgeTo[nbr.Value] = c.Value
		r.open.Push(nbr.Value, tentative+r.opts.Heuristic(nbr, r.dst))
		r.pushed++
	}

	return nil
}

// pathTo walks edgeTo back from end to the start and reverses it.
func (r *runner) pathTo(end int) core.Path {
	rev := make([]int, 0, r.distTo[end]+1)
	for v := end; v != noEdge; v = r.edgeTo[v] {
		rev = append(rev, v)
		if v == r.src.Value {
			break
		}
	}

	path := make(core.Path, len(rev))
	for i, v := range rev {
		n, _ := r.g.Node(v) // every v came from edgeTo, so it is a valid node
		path[len(rev)-1-i] = n
	}

	return path
}

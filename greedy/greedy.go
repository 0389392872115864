// Package greedy implements the backtracking walker.
package greedy

import (
	"fmt"

	"github.com/katalvlaran/hypercube/core"
)

// walker holds the route and the exclusion sets for one Path call.
type walker struct {
	g      *core.Graph
	opts   Options
	target core.Node
	route  []int  // values from start to the current node
	onPath []bool // value → currently on route
	dead   []bool // value → abandoned, never re-entered
	res    Result
}

// Path walks from start to end and returns the route it settles on.
// g is only read.
func Path(g *core.Graph, start, end int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Resolve endpoints
	src, err := g.Node(start)
	if err != nil {
		return nil, fmt.Errorf("greedy: start: %w", err)
	}
	dst, err := g.Node(end)
	if err != nil {
		return nil, fmt.Errorf("greedy: end: %w", err)
	}

	// 4. Walk
	w := &walker{
		g:      g,
		opts:   o,
		target: dst,
		route:  make([]int, 0, g.Dimension()+1),
		onPath: make([]bool, g.NodeCount()),
		dead:   make([]bool, g.NodeCount()),
	}
	if err = w.enter(src); err != nil {
		return nil, err
	}
	if err = w.run(); err != nil {
		log := g.Logger()
		log.Debug().
			Err(err).
			Str("start", src.Bits).
			Str("end", dst.Bits).
			Int("steps", w.res.Steps).
			Int("dead_ends", w.res.DeadEnds).
			Msg("greedy: walk failed")

		return nil, err
	}

	// 5. Materialise the route
	w.res.Path = make(core.Path, len(w.route))
	for i, v := range w.route {
		w.res.Path[i], _ = g.Node(v)
	}

	log := g.Logger()
	log.Debug().
		Str("start", src.Bits).
		Str("end", dst.Bits).
		Int("edges", w.res.Path.EdgeCount()).
		Int("steps", w.res.Steps).
		Int("backtracks", w.res.Backtracks).
		Msg("greedy: path found")

	return &w.res, nil
}

// run advances or retreats until the current node is the target.
func (w *walker) run() error {
	var (
		cur  core.Node
		next core.Node
		ok   bool
		err  error
	)
	for {
		// 1. Success check
		cur, _ = w.g.Node(w.route[len(w.route)-1])
		if cur.Value == w.target.Value {
			return nil
		}

		// 2. Cancellation and budget
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d", ErrStepLimit, w.opts.MaxSteps)
		}

		// 3. Pick the best candidate
		if next, ok, err = w.best(cur); err != nil {
			return err
		}
		if ok {
			w.res.Steps++
			if err = w.enter(next); err != nil {
				return err
			}

			continue
		}

		// 4. Nothing to try from the start: give up
		if len(w.route) == 1 {
			return fmt.Errorf("greedy: %s→%s: %w", cur.Bits, w.target.Bits, core.ErrNoPathFound)
		}

		// 5. Dead end: retreat one hop
		if err = w.retreat(cur); err != nil {
			return err
		}
	}
}

// best returns the candidate neighbour of cur closest in weight to the target.
// The strict comparison keeps the first of several equally close candidates.
func (w *walker) best(cur core.Node) (core.Node, bool, error) {
	nbrs, err := w.g.NeighborNodes(cur.Value)
	if err != nil {
		return core.Node{}, false, fmt.Errorf("greedy: neighbours of %s: %w", cur.Bits, err)
	}

	var (
		pick  core.Node
		found bool
		bestD int
		d     int
	)
	for _, nbr := range nbrs {
		if w.onPath[nbr.Value] || w.dead[nbr.Value] {
			continue
		}
		d = nbr.HammingDistance(w.target)
		if !found || d < bestD {
			pick, bestD, found = nbr, d, true
		}
	}

	return pick, found, nil
}

// enter appends n to the route.
func (w *walker) enter(n core.Node) error {
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("greedy: OnVisit hook for %s: %w", n.Bits, err)
		}
	}
	w.route = append(w.route, n.Value)
	w.onPath[n.Value] = true

	return nil
}

// retreat marks cur as a dead end and pops it off the route.
func (w *walker) retreat(cur core.Node) error {
	if w.opts.OnBacktrack != nil {
		if err := w.opts.OnBacktrack(cur); err != nil {
			return fmt.Errorf("greedy: OnBacktrack hook for %s: %w", cur.Bits, err)
		}
	}
	w.dead[cur.Value] = true
	w.onPath[cur.Value] = false
	w.route = w.route[:len(w.route)-1]
	w.res.Steps++
	w.res.Backtracks++
	w.res.DeadEnds++

	return nil
}

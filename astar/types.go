// Package astar defines heuristics, options and the search result.
package astar

import (
	"errors"

	"github.com/katalvlaran/hypercube/core"
)

// ErrGraphNil indicates that a nil *core.Graph was passed to ShortestPath.
var ErrGraphNil = errors.New("astar: graph is nil")

// Heuristic estimates the remaining hop count from n to target.
// It must never overestimate, and must change by at most 1 across an edge,
// or ShortestPath loses its optimality guarantee.
type Heuristic func(n, target core.Node) int

// WeightHeuristic is |weight(n) − weight(target)|, the default.
func WeightHeuristic(n, target core.Node) int { return n.HammingDistance(target) }

// BitHeuristic is the number of differing bits. It is exact on a full cube
// and still admissible and consistent on a damaged one, so it expands fewer
// nodes than WeightHeuristic.
func BitHeuristic(n, target core.Node) int { return n.BitDistance(target) }

// Options configures ShortestPath.
type Options struct {
	// Heuristic estimates remaining hops; nil means WeightHeuristic.
	Heuristic Heuristic

	// OnExpand, if non-nil, is called for every node whose neighbours are
	// about to be relaxed, start included. A returned error aborts the search.
	OnExpand func(n core.Node) error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns the weight-difference heuristic and no hooks.
func DefaultOptions() Options {
	return Options{Heuristic: WeightHeuristic}
}

// WithHeuristic replaces the heuristic. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand installs a hook run before each expansion.
func WithOnExpand(fn func(n core.Node) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Path runs from start to end inclusive. When several shortest paths
	// exist, which one is returned depends on neighbour order and the
	// fringe's FIFO tie-break; only its length is guaranteed.
	Path core.Path

	// Expanded counts nodes whose neighbours were relaxed.
	Expanded int

	// Pushed counts fringe pushes (improvements), stale ones included.
	Pushed int
}

// EdgeCount returns the number of hops on the path.
func (r *Result) EdgeCount() int { return r.Path.EdgeCount() }

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Path and Graph types, sentinel errors and construction options.
// AI-HINT (file):
//   - Every search package wraps ErrNoPathFound, so callers test one sentinel
//     regardless of the algorithm used.

package core

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"
)

// Sentinel errors for hypercube construction, mutation and search.
var (
	// ErrInvalidDimension indicates a dimension < 1 or > MaxDimension.
	ErrInvalidDimension = errors.New("core: invalid dimension")

	// ErrInvalidBitstring indicates a malformed node bit-string.
	ErrInvalidBitstring = errors.New("core: invalid bit-string")

	// ErrNodeNotFound indicates a node value outside the cube.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that the requested edge is not present.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInsufficientEdges indicates that a removal request exceeds the current edge count.
	// The graph is left unchanged.
	ErrInsufficientEdges = errors.New("core: not enough edges")

	// ErrInvalidEdgeCount indicates a negative removal request.
	ErrInvalidEdgeCount = errors.New("core: edge count must be non-negative")

	// ErrNoPathFound is a legitimate search outcome: the target is unreachable
	// from the start in the current (possibly damaged) graph.
	ErrNoPathFound = errors.New("core: no path found")
)

const (
	// MaxDimension bounds the cube size. A 20-cube holds 2^20 nodes with 20
	// neighbours each, about 170 MB of adjacency; every further dimension
	// doubles that and the per-query state of astar and bfs.
	MaxDimension = 20

	// DefaultSeed seeds the edge-removal generator when no option overrides it.
	DefaultSeed int64 = 0
)

// Node is an immutable hypercube vertex.
//
// Value alone determines Bits and Weight, so two Nodes are equal (==) iff
// their Values are equal.
type Node struct {
	// Value is the integer label, 0 ≤ Value < 2^n.
	Value int

	// Bits is Value in binary, most significant bit first, zero padded to n.
	Bits string

	// Weight is the Hamming weight (number of set bits) of Value.
	Weight int
}

// Edge is an undirected edge between two node values.
// Edges returned by Subgraph keep the orientation in which they were drawn:
// U is the randomly chosen node, V the randomly chosen neighbour.
type Edge struct {
	U, V int
}

// Path is an ordered node sequence from a start node to a target, inclusive.
type Path []Node

// EdgeCount returns the number of hops on the path (len-1), or 0 for an empty path.
func (p Path) EdgeCount() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Bits returns the bit-strings of the path nodes in order.
func (p Path) Bits() []string {
	out := make([]string, len(p))
	for i, n := range p {
		out[i] = n.Bits
	}

	return out
}

// Option configures a Graph before construction.
type Option func(*graphConfig)

// graphConfig holds resolved construction knobs.
type graphConfig struct {
	seed   int64
	rng    *rand.Rand
	logger zerolog.Logger
}

// newGraphConfig applies options in order over deterministic defaults.
func newGraphConfig(opts ...Option) graphConfig {
	cfg := graphConfig{
		seed:   DefaultSeed,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// WithSeed seeds the graph-owned generator used by Subgraph.
// The same seed and the same sequence of Subgraph calls remove the same edges.
func WithSeed(seed int64) Option {
	return func(c *graphConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand installs a caller-owned generator. A nil generator is ignored.
// Clone cannot reproduce the state of a caller-owned generator; it reseeds
// from the last WithSeed value instead.
func WithRand(rng *rand.Rand) Option {
	return func(c *graphConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithLogger routes debug events (construction, removals, search outcomes)
// to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *graphConfig) {
		c.logger = l
	}
}

// Graph is an n-dimensional hypercube with removable edges.
type Graph struct {
	dim   int
	nodes []Node  // value → Node
	adj   [][]int // value → neighbour values, construction (bit-position) order
	edges int     // current undirected edge count

	seed   int64
	rng    *rand.Rand
	logger zerolog.Logger
}

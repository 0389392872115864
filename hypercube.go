package hypercube

import (
	"fmt"

	"github.com/katalvlaran/hypercube/astar"
	"github.com/katalvlaran/hypercube/bfs"
	"github.com/katalvlaran/hypercube/converters"
	"github.com/katalvlaran/hypercube/core"
	"github.com/katalvlaran/hypercube/greedy"
)

// Graph is a hypercube addressed by bit-strings.
type Graph struct {
	g *core.Graph
}

// PathResult is a route from start to end inclusive.
type PathResult struct {
	EdgeCount int      `json:"edgeCount"`
	Path      []string `json:"path"`
}

// BuildGraph constructs the full hypercube of the given dimension. seed
// drives every later Subgraph call; options after it may override it
// (core.WithRand) or add a logger (core.WithLogger).
func BuildGraph(dimension int, seed int64, opts ...core.Option) (*Graph, error) {
	all := make([]core.Option, 0, len(opts)+1)
	all = append(all, core.WithSeed(seed))
	all = append(all, opts...)

	g, err := core.NewGraph(dimension, all...)
	if err != nil {
		return nil, err
	}

	return &Graph{g: g}, nil
}

// Wrap exposes an existing core graph through the bit-string API.
func Wrap(g *core.Graph) *Graph { return &Graph{g: g} }

// Core returns the underlying graph for the integer-valued APIs.
func (h *Graph) Core() *core.Graph { return h.g }

// Dimension returns n.
func (h *Graph) Dimension() int { return h.g.Dimension() }

// NodeCount returns 2^n.
func (h *Graph) NodeCount() int { return h.g.NodeCount() }

// EdgeCount returns the current number of undirected edges.
func (h *Graph) EdgeCount() int { return h.g.EdgeCount() }

// Stats summarises how far the cube has been damaged.
func (h *Graph) Stats() *core.GraphStats { return h.g.Stats() }

// GreedyPath runs the backtracking walk from startBits to endBits.
func (h *Graph) GreedyPath(startBits, endBits string) (*PathResult, error) {
	s, e, err := h.endpoints(startBits, endBits)
	if err != nil {
		return nil, err
	}
	res, err := greedy.Path(h.g, s.Value, e.Value)
	if err != nil {
		return nil, err
	}

	return newPathResult(res.Path), nil
}

// ShortestPath runs A* from startBits to endBits.
func (h *Graph) ShortestPath(startBits, endBits string) (*PathResult, error) {
	s, e, err := h.endpoints(startBits, endBits)
	if err != nil {
		return nil, err
	}
	res, err := astar.ShortestPath(h.g, s.Value, e.Value)
	if err != nil {
		return nil, err
	}

	return newPathResult(res.Path), nil
}

// Subgraph removes numEdges random edges in place.
func (h *Graph) Subgraph(numEdges int) error {
	_, err := h.g.Subgraph(numEdges)

	return err
}

// RemoveEdge deletes the edge between two adjacent bit-strings.
func (h *Graph) RemoveEdge(aBits, bBits string) error {
	a, b, err := h.endpoints(aBits, bBits)
	if err != nil {
		return err
	}

	return h.g.RemoveEdge(a.Value, b.Value)
}

// Isolate removes every edge of bits and returns how many were removed.
func (h *Graph) Isolate(bits string) (int, error) {
	n, err := h.g.ParseBits(bits)
	if err != nil {
		return 0, err
	}

	return h.g.Isolate(n.Value)
}

// HopDistance returns the exact number of hops between two nodes in the
// current graph, found by breadth-first search.
func (h *Graph) HopDistance(aBits, bBits string) (int, error) {
	a, b, err := h.endpoints(aBits, bBits)
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(h.g, a.Value)
	if err != nil {
		return 0, err
	}
	if !res.Reached(b.Value) {
		return 0, fmt.Errorf("hypercube: %s→%s: %w", a.Bits, b.Bits, ErrNoPathFound)
	}

	return res.Depth[b.Value], nil
}

// Components lists connected components as bit-strings, each sorted by
// value, ordered by their smallest member.
func (h *Graph) Components() [][]string {
	comps := converters.Components(h.g)
	out := make([][]string, len(comps))
	for i, comp := range comps {
		out[i] = make([]string, len(comp))
		for j, v := range comp {
			n, _ := h.g.Node(v)
			out[i][j] = n.Bits
		}
	}

	return out
}

// Adjacency maps every node's bit-string to its neighbours' bit-strings in
// neighbour order.
func (h *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, h.g.NodeCount())
	for _, n := range h.g.Nodes() {
		nbrs, _ := h.g.NeighborNodes(n.Value)
		bits := make([]string, len(nbrs))
		for i, nbr := range nbrs {
			bits[i] = nbr.Bits
		}
		out[n.Bits] = bits
	}

	return out
}

// endpoints parses two bit-strings against the cube dimension.
func (h *Graph) endpoints(aBits, bBits string) (core.Node, core.Node, error) {
	a, err := h.g.ParseBits(aBits)
	if err != nil {
		return core.Node{}, core.Node{}, err
	}
	b, err := h.g.ParseBits(bBits)
	if err != nil {
		return core.Node{}, core.Node{}, err
	}

	return a, b, nil
}

func newPathResult(p core.Path) *PathResult {
	return &PathResult{EdgeCount: p.EdgeCount(), Path: p.Bits()}
}

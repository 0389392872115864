package converters

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/hypercube/core"
)

// ToGonum returns an undirected gonum graph holding every node of g, isolated
// ones included, and each live edge once. Node IDs equal node values.
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for v := 0; v < g.NodeCount(); v++ {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		out.SetEdge(out.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return out
}

// Components returns the connected components of g as sorted node values,
// ordered by their smallest member. An isolated node is its own component.
func Components(g *core.Graph) [][]int {
	cc := topo.ConnectedComponents(ToGonum(g))

	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		out = append(out, nodeValues(comp))
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}

// PathExists reports whether v is reachable from u in g.
// Values outside the cube are never reachable.
func PathExists(g *core.Graph, u, v int) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}

	return topo.PathExistsIn(ToGonum(g), simple.Node(u), simple.Node(v))
}

// nodeValues converts gonum nodes to sorted cube values.
func nodeValues(nodes []graph.Node) []int {
	vals := make([]int, len(nodes))
	for i, n := range nodes {
		vals[i] = int(n.ID())
	}
	slices.Sort(vals)

	return vals
}

// Package converters provides adapters between core.Graph and gonum/graph.
//
// ToGonum exports the current (possibly damaged) cube as a
// simple.UndirectedGraph whose node IDs are the cube's node values, so any
// gonum algorithm (paths, traversal, components) can run on it. Components and
// PathExists are thin wrappers over gonum/graph/topo with deterministic
// ordering.
package converters

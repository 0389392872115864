// Package astar finds shortest paths between two hypercube nodes with A*.
//
// Every edge costs 1. The default heuristic is the Hamming-weight difference
// h(u) = |weight(u) − weight(target)|:
//
//   - admissible: the true hop distance is at least the number of differing
//     bits, which is at least the weight difference;
//   - consistent: crossing one edge flips one bit, so h changes by at most 1,
//     the edge cost.
//
// Consistency means a node is never improved after it is popped, so the
// returned EdgeCount is exact on a full cube and on any damaged sub-cube.
//
// The open set is a fringe.Fringe seeded with every node at Infinity. The
// start node's entry is removed up front; it is expanded first without a
// fringe slot. Relaxation pushes a fresh (node, g+h) entry and lets the
// fringe mark the previous one outdated (lazy decrease-key).
//
// Complexity:
//
//   - Time:  O(E log V) worst case, E = n·2^(n-1), V = 2^n.
//   - Space: O(V + pushes).
//
// Errors:
//
//   - ErrGraphNil          nil graph.
//   - core.ErrNodeNotFound start or end outside the cube.
//   - core.ErrNoPathFound  end unreachable from start.
//   - any error returned by an OnExpand hook.
package astar

// Package bfs provides breadth-first search over a (possibly damaged)
// hypercube, returning exact hop distances, parent links and visit order.
//
// BFS is the ground truth for hop distance once edges have been removed: on a
// full cube the distance between two nodes is their bit distance, on a damaged
// one only a traversal can tell. It backs hypercube.Graph.HopDistance and the
// optimality checks of the A* tests.
//
// Result layout:
//
//	All per-node slices are indexed by node value and sized 2^n. Depth is -1
//	and Parent is -1 for nodes the traversal never reached.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V).
//
// Options:
//
//   - WithContext(ctx)     cancellation.
//   - WithMaxDepth(d)      stop expanding past depth d (d > 0; 0 = unlimited).
//   - WithOnVisit(fn)      hook per dequeued node; an error aborts the search.
package bfs

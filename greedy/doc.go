// Package greedy implements a best-effort, heuristic-guided walk with
// backtracking over a (possibly damaged) hypercube.
//
// At every step the walker moves to the live neighbour whose Hamming weight is
// closest to the target's weight. Neighbours already on the current route or
// marked as dead ends are never candidates. When no candidate remains the
// current node becomes a dead end and the walker retreats one hop. The walk
// fails once it is back at the start with nothing left to try.
//
// Tie-break:
//
//	Among candidates at equal distance from the target weight, the first one in
//	neighbour order wins. Neighbour order is bit position, most significant
//	first, with removed edges simply absent, so the route is a pure function of
//	the graph and the endpoints.
//
// The result is a valid route, not necessarily a shortest one. Use package
// astar when the hop count matters.
//
// Complexity:
//
//   - Time:   O(V·n) in the worst case: every node is entered and abandoned at
//     most once and each step scans at most n neighbours.
//   - Memory: O(V) for the route, the on-route set and the dead-end set.
//
// Options:
//
//   - WithContext(ctx)      cancels a long walk on a large cube.
//   - WithOnVisit(fn)       hook on every node entered, start included.
//   - WithOnBacktrack(fn)   hook on every node abandoned as a dead end.
//   - WithMaxSteps(limit)   bounds advances plus retreats (ErrStepLimit).
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - core.ErrNodeNotFound   if start or end is outside the cube.
//   - core.ErrNoPathFound    if the walk exhausts every option.
//   - ErrStepLimit           if MaxSteps is exceeded.
//   - context errors and any error returned by a hook.
package greedy

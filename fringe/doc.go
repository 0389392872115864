// Package fringe implements an indexed min-priority queue with lazy
// decrease-key and lazy deletion, the "fringe" of an A* search.
//
// What:
//
//   - Every key has at most one active entry at a time.
//   - Push(key, p) never searches the heap: it marks the key's current entry
//     outdated and inserts a fresh one. Outdated entries stay in the heap
//     until they surface at the top, where Pop discards them.
//   - Remove(key) marks the active entry outdated without touching the heap.
//
// Why:
//
//   - container/heap has no O(log n) decrease-key for an element whose index
//     is unknown; "insert new, mark old stale, skip stale on pop" gives the
//     same asymptotics with a side map from key to its live entry.
//
// Ordering:
//
//   - Lower priority pops first. Equal priorities pop in insertion order
//     (FIFO), so a search driven by a Fringe is deterministic.
//
// Complexity:
//
//   - Push, Pop (amortised over discarded entries): O(log N), N = physical heap size.
//   - Remove, Priority: O(1).
//   - Memory: O(K + P) for K initial keys and P pushes.
package fringe

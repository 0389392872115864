// SPDX-License-Identifier: MIT

// Package core defines the hypercube Graph and Node types, the sentinel errors
// shared by every search package, and the functional options used to build
// a graph.
//
// A hypercube of dimension n has 2^n nodes labelled 0..2^n-1; two nodes are
// adjacent iff their labels differ in exactly one bit:
//
//	    001───011
//	   / |    / |
//	000───010   |
//	 |  101─|─111
//	 | /    | /
//	100───110
//
// The full adjacency is materialised once at construction (O(n·2^n));
// afterwards edges can only be removed (RemoveEdge, Isolate, Subgraph), never
// added back. Every removal deletes both directions at once, so adjacency is
// always symmetric and EdgeCount() is always half the sum of the neighbour
// list lengths.
//
// Randomness:
//
//	Subgraph draws from a generator owned by the Graph (WithSeed, default
//	DefaultSeed, or WithRand). No package-level randomness is used, so a
//	seed fully determines which edges a sequence of Subgraph calls removes.
//
// Concurrency:
//
//	A Graph is driven by one caller. It holds no locks: path queries only
//	read the adjacency, and mutations must not overlap with queries.
//
// Errors:
//
//	ErrInvalidDimension  - dimension outside [1, MaxDimension].
//	ErrInvalidBitstring  - bit-string of the wrong width or with a rune other than '0'/'1'.
//	ErrNodeNotFound      - node value outside [0, 2^n).
//	ErrEdgeNotFound      - the two nodes are not (or no longer) adjacent.
//	ErrInsufficientEdges - Subgraph asked to remove more edges than exist.
//	ErrInvalidEdgeCount  - Subgraph asked to remove a negative number of edges.
//	ErrNoPathFound       - a search exhausted the reachable nodes without hitting the target.
package core

// Package fringe defines the heap entries and the Infinity priority.
package fringe

import "math"

// Infinity is the priority of a key that has not been reached yet.
const Infinity = math.MaxInt

// Entry is a popped (key, priority) pair.
type Entry struct {
	Key      int
	Priority int
}

// item is the heap element. seq orders equal priorities by insertion.
type item struct {
	key      int
	priority int
	seq      uint64
	outdated bool
}

// itemHeap is a container/heap min-heap of *item ordered by (priority, seq).
type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

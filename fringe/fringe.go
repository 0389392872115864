// Package fringe implements the indexed priority queue operations.
package fringe

import "container/heap"

// Fringe is an indexed min-priority queue over int keys.
// The zero value is not usable; call New.
type Fringe struct {
	h      itemHeap
	active map[int]*item // key → its single non-outdated entry
	seq    uint64
}

// New seeds a Fringe with one Infinity entry per key, in the given order.
// Duplicate keys keep only their last entry active.
func New(keys []int) *Fringe {
	f := &Fringe{
		h:      make(itemHeap, 0, len(keys)),
		active: make(map[int]*item, len(keys)),
	}
	for _, k := range keys {
		it := f.newItem(k, Infinity)
		if old, ok := f.active[k]; ok {
			old.outdated = true
		}
		f.active[k] = it
		f.h = append(f.h, it)
	}
	heap.Init(&f.h)

	return f
}

// Push gives key a new active entry with the given priority. A previous
// active entry for key, if any, is marked outdated and left in the heap.
func (f *Fringe) Push(key, priority int) {
	if old, ok := f.active[key]; ok {
		old.outdated = true
	}
	it := f.newItem(key, priority)
	f.active[key] = it
	heap.Push(&f.h, it)
}

// Pop removes the lowest-priority active entry and returns it, discarding
// any outdated entries above it. ok is false once no active entry remains.
func (f *Fringe) Pop() (e Entry, ok bool) {
	for f.h.Len() > 0 {
		it := heap.Pop(&f.h).(*item)
		if it.outdated {
			continue
		}
		delete(f.active, it.key)

		return Entry{Key: it.key, Priority: it.priority}, true
	}

	return Entry{}, false
}

// Remove marks key's active entry outdated without popping it.
// It reports whether key had an active entry.
func (f *Fringe) Remove(key int) bool {
	it, ok := f.active[key]
	if !ok {
		return false
	}
	it.outdated = true
	delete(f.active, key)

	return true
}

// Priority returns the priority of key's active entry.
func (f *Fringe) Priority(key int) (int, bool) {
	it, ok := f.active[key]
	if !ok {
		return 0, false
	}

	return it.priority, true
}

// Contains reports whether key has an active entry.
func (f *Fringe) Contains(key int) bool {
	_, ok := f.active[key]

	return ok
}

// Len returns the physical heap size, outdated entries included.
func (f *Fringe) Len() int { return f.h.Len() }

// Active returns the number of keys with an active entry.
func (f *Fringe) Active() int { return len(f.active) }

// Empty reports whether Pop would return ok == false.
func (f *Fringe) Empty() bool { return len(f.active) == 0 }

func (f *Fringe) newItem(key, priority int) *item {
	f.seq++

	return &item{key: key, priority: priority, seq: f.seq}
}

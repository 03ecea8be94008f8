// SPDX-License-Identifier: MIT

// Package frontier provides the minimum-priority worklist used by the
// shortest-path engine.
//
// A Frontier is a binary min-heap of (node, priority) entries. It does not
// deduplicate: a node pushed twice is held twice, and the caller is
// expected to discard stale entries on extraction ("lazy decrease-key").
//
// Among entries of equal priority, the one inserted first is extracted
// first, so a given sequence of operations always yields the same order.
//
// Complexity:
//
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
//   - IsEmpty, Len, Peek: O(1)
//
// A Frontier is not safe for concurrent use; the engine allocates one per query.
package frontier

import "container/heap"

// entry is one heap slot. seq breaks priority ties in insertion order.
type entry[K comparable] struct {
	node     K
	priority float64
	seq      uint64
}

// entries implements heap.Interface ordered by (priority, seq).
type entries[K comparable] []entry[K]

func (h entries[K]) Len() int { return len(h) }

func (h entries[K]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entries[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[K].
func (h *entries[K]) Push(x any) { *h = append(*h, x.(entry[K])) }

// Pop is called by heap.Pop and removes the last slot.
func (h *entries[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Frontier is a min-priority multiset of nodes.
// The zero value is an empty, ready-to-use Frontier.
type Frontier[K comparable] struct {
	h   entries[K]
	seq uint64
}

// New returns an empty Frontier with room for capacity entries.
func New[K comparable](capacity int) *Frontier[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier[K]{h: make(entries[K], 0, capacity)}
}

// Insert adds (node, priority). Existing entries for node are kept.
func (f *Frontier[K]) Insert(node K, priority float64) {
	heap.Push(&f.h, entry[K]{node: node, priority: priority, seq: f.seq})
	f.seq++
}

// ExtractMin removes and returns the entry with the smallest priority.
// ok is false when the frontier is empty.
func (f *Frontier[K]) ExtractMin() (node K, priority float64, ok bool) {
	if len(f.h) == 0 {
		return node, 0, false
	}
	it := heap.Pop(&f.h).(entry[K])

	return it.node, it.priority, true
}

// Peek returns the entry ExtractMin would return, without removing it.
func (f *Frontier[K]) Peek() (node K, priority float64, ok bool) {
	if len(f.h) == 0 {
		return node, 0, false
	}

	return f.h[0].node, f.h[0].priority, true
}

// IsEmpty reports whether no entries remain.
func (f *Frontier[K]) IsEmpty() bool { return len(f.h) == 0 }

// Len returns the number of entries, stale ones included.
func (f *Frontier[K]) Len() int { return len(f.h) }

// Reset drops all entries but keeps the backing storage for reuse.
func (f *Frontier[K]) Reset() {
	clear(f.h)
	f.h = f.h[:0]
	f.seq = 0
}

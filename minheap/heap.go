package minheap

import "fmt"

// IndexedMinHeap is a binary min-heap of Entry keyed by Entry.Key, with a
// vertex → slot index for decrease-key.
type IndexedMinHeap struct {
	entries []Entry // slots [0,size) form the heap; [size,cap) hold extracted entries
	pos     []int   // pos[v] is the slot currently holding v
	size    int
}

// New returns an empty heap for vertices 0..capacity-1.
// Complexity: O(capacity).
func New(capacity int) *IndexedMinHeap {
	if capacity < 0 {
		capacity = 0
	}

	return &IndexedMinHeap{
		entries: make([]Entry, capacity),
		pos:     make([]int, capacity),
	}
}

// Init bulk-loads one entry per vertex and sets size to the capacity.
// Entries may arrive in any order; heap order is restored bottom-up.
//
// Complexity: O(n).
func (h *IndexedMinHeap) Init(entries []Entry) error {
	n := len(h.pos)
	if len(entries) != n {
		return fmt.Errorf("%w: got %d entries, capacity %d", ErrBadInit, len(entries), n)
	}

	seen := make([]bool, n)
	for i, e := range entries {
		if e.Vertex < 0 || e.Vertex >= n || seen[e.Vertex] {
			return fmt.Errorf("%w: vertex %d at index %d", ErrBadInit, e.Vertex, i)
		}
		seen[e.Vertex] = true
		h.entries[i] = e
		h.pos[e.Vertex] = i
	}
	h.size = n

	for i := n/2 - 1; i >= 0; i-- {
		h.minHeapify(i)
	}

	return nil
}

// IsEmpty reports whether no vertex is queued.
func (h *IndexedMinHeap) IsEmpty() bool { return h.size == 0 }

// Len returns the number of queued vertices.
func (h *IndexedMinHeap) Len() int { return h.size }

// Contains reports whether v is still queued (isInHeap). O(1).
func (h *IndexedMinHeap) Contains(v int) bool {
	return v >= 0 && v < len(h.pos) && h.pos[v] < h.size
}

// Key returns the current key of a queued vertex.
func (h *IndexedMinHeap) Key(v int) (int64, error) {
	if !h.Contains(v) {
		return 0, fmt.Errorf("%w: %d", ErrNotInHeap, v)
	}

	return h.entries[h.pos[v]].Key, nil
}

// ExtractMin removes and returns the entry with the smallest key.
// The last live entry moves to the root and sinks; the removed entry is parked
// at the old last slot so its pos stays ≥ size.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) ExtractMin() (Entry, error) {
	if h.size == 0 {
		return Entry{}, ErrEmptyHeap
	}

	root := h.entries[0]
	last := h.size - 1
	h.swap(0, last)
	h.size--
	h.minHeapify(0)

	return root, nil
}

// DecreaseKey lowers the key of queued vertex v to key and bubbles it up.
// An equal key is accepted and leaves the heap unchanged.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) DecreaseKey(v int, key int64) error {
	if !h.Contains(v) {
		return fmt.Errorf("%w: %d", ErrNotInHeap, v)
	}
	i := h.pos[v]
	if key > h.entries[i].Key {
		return fmt.Errorf("%w: vertex %d key %d → %d", ErrKeyIncrease, v, h.entries[i].Key, key)
	}

	h.entries[i].Key = key
	for i > 0 && h.entries[i].Key < h.entries[parent(i)].Key {
		h.swap(i, parent(i))
		i = parent(i)
	}

	return nil
}

// minHeapify sinks the entry at idx until neither child is smaller.
func (h *IndexedMinHeap) minHeapify(idx int) {
	for {
		smallest := idx
		left, right := 2*idx+1, 2*idx+2
		if left < h.size && h.entries[left].Key < h.entries[smallest].Key {
			smallest = left
		}
		if right < h.size && h.entries[right].Key < h.entries[smallest].Key {
			smallest = right
		}
		if smallest == idx {
			return
		}
		h.swap(idx, smallest)
		idx = smallest
	}
}

// swap exchanges two slots and keeps pos consistent.
func (h *IndexedMinHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].Vertex] = i
	h.pos[h.entries[j].Vertex] = j
}

func parent(i int) int { return (i - 1) / 2 }

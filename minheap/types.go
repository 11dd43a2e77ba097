package minheap

import "errors"

// Sentinel errors returned by IndexedMinHeap.
var (
	// ErrBadInit indicates Init received entries that do not describe every
	// vertex 0..capacity-1 exactly once.
	ErrBadInit = errors.New("minheap: init entries must cover each vertex exactly once")

	// ErrEmptyHeap indicates ExtractMin was called on an empty heap.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrNotInHeap indicates the vertex is out of range or already extracted.
	ErrNotInHeap = errors.New("minheap: vertex not in heap")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("minheap: new key is greater than current key")
)

// Entry pairs a vertex with its priority.
type Entry struct {
	Vertex int
	Key    int64
}

// Package minheap implements an indexed binary min-heap over vertex IDs
// 0..capacity-1 with O(log n) ExtractMin and DecreaseKey and O(1) membership.
//
// What & Why
//
//   - container/heap cannot locate an element without scanning, so Prim's
//     algorithm built on it must push duplicates ("lazy decrease-key").
//     IndexedMinHeap keeps a position map pos[vertex] → slot updated on every
//     swap, which makes true decrease-key and Contains O(log n) / O(1).
//
// Invariants
//
//   - Heap order: entries[parent(i)].Key ≤ entries[i].Key for every i < size.
//   - Position map: pos[entries[i].Vertex] == i for every live slot i < size.
//   - Membership: Contains(v) ⇔ pos[v] < size. An extracted vertex is parked
//     in the slot just past the live region, so its pos is ≥ size forever after.
//
// Lifecycle
//
//	h := minheap.New(n)          // empty, pos sized to n
//	_ = h.Init(entries)          // bulk-load all n vertices once; size = n
//	for !h.IsEmpty() {
//	    e, _ := h.ExtractMin()   // O(log n)
//	    _ = h.DecreaseKey(v, k)  // O(log n), keys only ever go down
//	}
//
// Errors
//
//	ErrBadInit     - Init received a wrong count, a duplicate or out-of-range vertex.
//	ErrEmptyHeap   - ExtractMin on an empty heap.
//	ErrNotInHeap   - DecreaseKey/Key on a vertex that is not (or no longer) queued.
//	ErrKeyIncrease - DecreaseKey with a key larger than the current one.
//
// Callers driving a correct algorithm never see the last three; they are
// reported rather than panicking so the caller decides how loudly to fail.
//
// Ties between equal keys are broken by whatever order the sift leaves;
// callers must not rely on it.
package minheap

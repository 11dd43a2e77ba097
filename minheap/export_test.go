package minheap

import "fmt"

// CheckInvariants exposes the heap-order and position-map invariants to minheap_test.
func (h *IndexedMinHeap) CheckInvariants() error {
	for i := 0; i < h.size; i++ {
		if h.pos[h.entries[i].Vertex] != i {
			return fmt.Errorf("pos[%d]=%d, want %d", h.entries[i].Vertex, h.pos[h.entries[i].Vertex], i)
		}
		if i > 0 && h.entries[parent(i)].Key > h.entries[i].Key {
			return fmt.Errorf("slot %d key %d below parent key %d", i, h.entries[i].Key, h.entries[parent(i)].Key)
		}
	}

	return nil
}

package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/minheap"
)

// BenchmarkExtractAll measures Init + full drain with interleaved decreases on 4096 vertices.
func BenchmarkExtractAll(b *testing.B) {
	const n = 4096
	r := rand.New(rand.NewSource(42))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = int64(r.Intn(1 << 20))
	}
	entries := make([]minheap.Entry, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := range entries {
			entries[v] = minheap.Entry{Vertex: v, Key: keys[v]}
		}
		h := minheap.New(n)
		_ = h.Init(entries)
		for !h.IsEmpty() {
			e, _ := h.ExtractMin()
			next := (e.Vertex + 1) % n
			if h.Contains(next) {
				if k, _ := h.Key(next); k > 0 {
					_ = h.DecreaseKey(next, k/2)
				}
			}
		}
	}
}

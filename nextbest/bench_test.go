package nextbest_test

import (
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/nextbest"
	"github.com/stretchr/testify/require"
)

// BenchmarkRun measures three rounds on a 120-vertex random graph; each round runs Prim V-1 times.
func BenchmarkRun(b *testing.B) {
	g, err := builder.BuildGraph(120,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 1000))},
		builder.Path(120), builder.RandomSparse(120, 0.05))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := nextbest.New(g)
		_, _ = s.Run()
	}
}

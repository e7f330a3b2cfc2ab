package tiling_test

import (
	"testing"

	"github.com/katalvlaran/qlattice/tiling"
)

// BenchmarkGenerate_Cubic measures a 9×9×9-cube grid (1000 nodes), the
// largest cubic request under the default ceiling.
// Complexity: O(V+E)
func BenchmarkGenerate_Cubic(b *testing.B) {
	p, r, err := tiling.CubicGrid(9, 9, 9)
	if err != nil {
		b.Fatalf("setup CubicGrid failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tiling.Generate(p, r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEstimateEdgeCount measures the closed-form estimate on a range
// far beyond the generation ceiling.
// Complexity: O(E) per call, independent of the range.
func BenchmarkEstimateEdgeCount(b *testing.B) {
	p := tiling.CubicPattern()
	r := tiling.Range3D(-500, 500, -500, 500, -500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tiling.EstimateEdgeCount(p, r)
	}
}

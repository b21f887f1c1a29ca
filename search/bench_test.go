package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/orienteer/grid"
	"github.com/katalvlaran/orienteer/search"
	"github.com/katalvlaran/orienteer/terrain"
)

// referenceGrid builds a reference-sized map with random passable terrain
// and roughly 10% impassable cells, corners kept open.
func referenceGrid(b *testing.B) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	cats := []terrain.Category{
		terrain.OpenLand, terrain.RoughMeadow, terrain.EasyForest, terrain.SlowForest,
		terrain.DenseForest, terrain.Road, terrain.Path, terrain.OpenLand, terrain.OpenLand,
		terrain.Impassable,
	}
	g, err := grid.New(grid.ReferenceWidth, grid.ReferenceHeight)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for _, c := range g.Cells() {
		g.SetTerrain(c.Pos, cats[rng.Intn(len(cats))])
	}
	g.SetTerrain(grid.Coordinate{X: 0, Y: 0}, terrain.OpenLand)
	g.SetTerrain(grid.Coordinate{X: grid.ReferenceWidth - 1, Y: grid.ReferenceHeight - 1}, terrain.OpenLand)
	return g
}

func benchmarkSearch(b *testing.B, opts ...search.Option) {
	base := referenceGrid(b)
	start := grid.Coordinate{X: 0, Y: 0}
	goal := grid.Coordinate{X: grid.ReferenceWidth - 1, Y: grid.ReferenceHeight - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		if _, err := search.Search(g, start, goal, opts...); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_RollingLinear measures the reference configuration across
// a 395×500 map, corner to corner.
func BenchmarkSearch_RollingLinear(b *testing.B) {
	benchmarkSearch(b)
}

// BenchmarkSearch_RollingHeap swaps in the heap frontier.
func BenchmarkSearch_RollingHeap(b *testing.B) {
	benchmarkSearch(b, search.WithFrontier(search.FrontierHeap))
}

// BenchmarkSearch_DiscoveryHeap measures the relaxing policy with a heap.
// Complexity: O(n log n) for n expansions.
func BenchmarkSearch_DiscoveryHeap(b *testing.B) {
	benchmarkSearch(b, search.WithFrontier(search.FrontierHeap), search.WithParentPolicy(search.ParentDiscovery))
}

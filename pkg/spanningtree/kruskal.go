package spanningtree

import (
	"sort"

	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
)

// Kruskal. scans edges by ascending weight and keeps every edge joining two different components.
// the stable sort keeps the input order among equal weights. O(E log E).
func Kruskal(n int, edges []da.WeightedEdge) ([]da.WeightedEdge, float64, error) {
	if n <= 1 {
		return []da.WeightedEdge{}, 0, nil
	}

	sorted := append([]da.WeightedEdge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GetWeight() < sorted[j].GetWeight()
	})

	uf := da.NewUnionFind(n)
	mst := make([]da.WeightedEdge, 0, n-1)
	total := 0.0
	for _, e := range sorted {
		if uf.Union(e.GetU(), e.GetV()) {
			mst = append(mst, e)
			total += e.GetWeight()
			if len(mst) == n-1 {
				break
			}
		}
	}

	if len(mst) < n-1 {
		return nil, 0, util.WrapErrorf(nil, util.ErrDisconnectedGraph, "edge set splits %d points into %d components",
			n, uf.NumberOfSets())
	}

	da.SortWeightedEdges(mst)
	return mst, total, nil
}

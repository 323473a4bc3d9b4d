package engine

import (
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
)

// PruneDanglingMalls. removes malls that hang off the network by a single road until none is left.
// removing a dangling mall can leave its neighbor dangling, so neighbors are pushed back on the worklist.
// houses are never removed and the anchor mall (the one wired to the city center) is always kept.
// returns the surviving edges in input order and the malls that lost all their roads.
func PruneDanglingMalls(points *da.PointSet, edges []da.WeightedEdge, anchor da.Index) ([]da.WeightedEdge, []da.Index) {
	g := da.NewGraphFromWeighted(points.NumberOfPoints(), edges)
	initialDegree := g.Degrees()

	dangling := func(v da.Index) bool {
		return v != anchor && points.IsMall(v) && g.GetDegree(v) == 1
	}

	queue := make([]da.Index, 0)
	for v := 0; v < points.NumberOfPoints(); v++ {
		if dangling(da.Index(v)) {
			queue = append(queue, da.Index(v))
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if !dangling(v) {
			continue
		}

		u := g.GetNeighbors(v)[0]
		g.RemoveEdge(da.NewEdge(u, v))
		if dangling(u) {
			queue = append(queue, u)
		}
	}

	kept := make([]da.WeightedEdge, 0, g.NumberOfEdges())
	for _, e := range edges {
		if g.HasEdge(e.GetEdge()) {
			kept = append(kept, e)
		}
	}

	pruned := make([]da.Index, 0)
	for v := 0; v < points.NumberOfPoints(); v++ {
		if points.IsMall(da.Index(v)) && initialDegree[v] > 0 && g.GetDegree(da.Index(v)) == 0 {
			pruned = append(pruned, da.Index(v))
		}
	}
	return kept, pruned
}

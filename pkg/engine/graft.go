package engine

import (
	"sort"

	"github.com/bofo90/RoadOptimization/pkg/costfunction"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
)

// GraftCityCenter. wires the city center to the nearest mall. houses are never connected to the center
// directly even when they are closer. among equidistant malls the lowest index wins.
// returns the input edges plus the new center edge, the anchor mall and its distance to the center.
func GraftCityCenter(points *da.PointSet, edges []da.WeightedEdge,
	costFunction costfunction.CostFunction) ([]da.WeightedEdge, da.Index, float64) {
	n := points.NumberOfSites()
	centerId := points.CityCenterID()

	dist := make([]float64, n)
	order := make([]da.Index, n)
	for i := 0; i < n; i++ {
		order[i] = da.Index(i)
		dist[i] = points.Distance(centerId, da.Index(i))
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dist[order[i]] < dist[order[j]]
	})

	anchor, found := da.Index(0), false
	for _, id := range order {
		if points.IsMall(id) {
			anchor, found = id, true
			break
		}
	}
	util.AssertPanic(found, "city center needs at least one mall to connect to")

	centerEdge := da.NewEdge(anchor, centerId)
	// weighted like every other express road, so the classifier recovers its physical length
	weight := costFunction.GetWeight(costfunction.NewRoad(points, centerEdge))

	grafted := make([]da.WeightedEdge, 0, len(edges)+1)
	grafted = append(grafted, edges...)
	grafted = append(grafted, da.NewWeightedEdge(centerEdge, weight))
	return grafted, anchor, dist[anchor]
}

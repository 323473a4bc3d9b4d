package engine

import (
	"github.com/bofo90/RoadOptimization/pkg"
	"github.com/bofo90/RoadOptimization/pkg/costfunction"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
)

// ClassifyRoads. splits edges into local and express roads and recovers their physical lengths by
// dividing the accumulated weights by alpha and (1 - alpha).
func ClassifyRoads(points *da.PointSet, edges []da.WeightedEdge, costFunction *costfunction.RoadCostFunction) (
	localRoads, expressRoads []da.WeightedEdge, localLength, expressLength float64) {

	localRoads = make([]da.WeightedEdge, 0, len(edges))
	expressRoads = make([]da.WeightedEdge, 0)
	for _, e := range edges {
		if points.GetRoadClass(e.GetEdge()) == pkg.LOCAL_ROAD {
			localRoads = append(localRoads, e)
		} else {
			expressRoads = append(expressRoads, e)
		}
	}

	localLength = costFunction.GetLength(util.Sum(da.Weights(localRoads)), pkg.LOCAL_ROAD)
	expressLength = costFunction.GetLength(util.Sum(da.Weights(expressRoads)), pkg.EXPRESS_ROAD)
	return localRoads, expressRoads, localLength, expressLength
}

package costfunction

import (
	"github.com/bofo90/RoadOptimization/pkg"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
)

// RoadCostFunction. local roads cost alpha per unit length, express roads cost (1 - alpha).
// alpha must lie in (0, 1); callers validate it.
type RoadCostFunction struct {
	alpha float64
}

func NewRoadCostFunction(alpha float64) *RoadCostFunction {
	return &RoadCostFunction{alpha: alpha}
}

func (rf *RoadCostFunction) GetAlpha() float64 {
	return rf.alpha
}

func (rf *RoadCostFunction) GetRoadClassFactor(class pkg.RoadClass) float64 {
	if class == pkg.LOCAL_ROAD {
		return rf.alpha
	}
	return 1 - rf.alpha
}

func (rf *RoadCostFunction) GetWeight(e EdgeAttributes) float64 {
	return e.GetLength() * rf.GetRoadClassFactor(e.GetRoadClass())
}

// GetLength. physical length of a road from its weight, the inverse of GetWeight
func (rf *RoadCostFunction) GetLength(weight float64, class pkg.RoadClass) float64 {
	return weight / rf.GetRoadClassFactor(class)
}

// GetWeights. weight of every edge, parallel to edges
func (rf *RoadCostFunction) GetWeights(points *da.PointSet, edges []da.Edge) []float64 {
	weights := make([]float64, len(edges))
	for i, e := range edges {
		weights[i] = rf.GetWeight(NewRoad(points, e))
	}
	return weights
}

// WeightEdges. edges paired with their weights
func (rf *RoadCostFunction) WeightEdges(points *da.PointSet, edges []da.Edge) []da.WeightedEdge {
	return da.NewWeightedEdges(edges, rf.GetWeights(points, edges))
}

// Road. an edge of the point set seen through EdgeAttributes
type Road struct {
	length float64
	class  pkg.RoadClass
}

func NewRoad(points *da.PointSet, e da.Edge) Road {
	return Road{
		length: points.Distance(e.GetU(), e.GetV()),
		class:  points.GetRoadClass(e),
	}
}

func (r Road) GetLength() float64 {
	return r.length
}

func (r Road) GetRoadClass() pkg.RoadClass {
	return r.class
}

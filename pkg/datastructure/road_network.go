package datastructure

import (
	"github.com/bofo90/RoadOptimization/pkg"
)

// RoadNetwork. the optimized road tree connecting houses, the surviving malls and the city center.
type RoadNetwork struct {
	points        *PointSet
	alpha         float64
	localRoads    []WeightedEdge
	expressRoads  []WeightedEdge
	localLength   float64 // unscaled (physical) length of local roads
	expressLength float64 // unscaled (physical) length of express roads
	anchor        Index   // mall wired to the city center
	prunedMalls   []Index
}

func NewRoadNetwork(points *PointSet, alpha float64, localRoads, expressRoads []WeightedEdge,
	localLength, expressLength float64, anchor Index, prunedMalls []Index) *RoadNetwork {
	return &RoadNetwork{
		points:        points,
		alpha:         alpha,
		localRoads:    localRoads,
		expressRoads:  expressRoads,
		localLength:   localLength,
		expressLength: expressLength,
		anchor:        anchor,
		prunedMalls:   prunedMalls,
	}
}

func (rn *RoadNetwork) GetPoints() *PointSet {
	return rn.points
}

func (rn *RoadNetwork) GetAlpha() float64 {
	return rn.alpha
}

func (rn *RoadNetwork) GetLocalRoads() []WeightedEdge {
	return append([]WeightedEdge(nil), rn.localRoads...)
}

func (rn *RoadNetwork) GetExpressRoads() []WeightedEdge {
	return append([]WeightedEdge(nil), rn.expressRoads...)
}

func (rn *RoadNetwork) GetLocalLength() float64 {
	return rn.localLength
}

func (rn *RoadNetwork) GetExpressLength() float64 {
	return rn.expressLength
}

func (rn *RoadNetwork) GetAnchor() Index {
	return rn.anchor
}

func (rn *RoadNetwork) GetPrunedMalls() []Index {
	return append([]Index(nil), rn.prunedMalls...)
}

// GetCost. alpha * local length + (1 - alpha) * express length
func (rn *RoadNetwork) GetCost() float64 {
	return rn.alpha*rn.localLength + (1-rn.alpha)*rn.expressLength
}

// GetLocalShare. fraction of the physical road length that is local
func (rn *RoadNetwork) GetLocalShare() float64 {
	total := rn.localLength + rn.expressLength
	if total == 0 {
		return 0
	}
	return rn.localLength / total
}

// GetRoads. local and express roads in ascending edge order
func (rn *RoadNetwork) GetRoads() []WeightedEdge {
	roads := make([]WeightedEdge, 0, len(rn.localRoads)+len(rn.expressRoads))
	roads = append(roads, rn.localRoads...)
	roads = append(roads, rn.expressRoads...)
	SortWeightedEdges(roads)
	return roads
}

func (rn *RoadNetwork) NumberOfRoads() int {
	return len(rn.localRoads) + len(rn.expressRoads)
}

func (rn *RoadNetwork) TotalWeight() float64 {
	return TotalWeight(rn.localRoads) + TotalWeight(rn.expressRoads)
}

func (rn *RoadNetwork) GetRoadClass(e Edge) pkg.RoadClass {
	return rn.points.GetRoadClass(e)
}

// GetConnectedMalls. malls that are an endpoint of at least one road, ascending
func (rn *RoadNetwork) GetConnectedMalls() []Index {
	seen := make(map[Index]struct{})
	malls := make([]Index, 0)
	for _, e := range rn.GetRoads() {
		for _, x := range []Index{e.u, e.v} {
			if !rn.points.IsMall(x) {
				continue
			}
			if _, ok := seen[x]; !ok {
				seen[x] = struct{}{}
				malls = append(malls, x)
			}
		}
	}
	sortIndices(malls)
	return malls
}

// Graph. the network as an undirected graph over every point including the city center
func (rn *RoadNetwork) Graph() *Graph {
	return NewGraphFromWeighted(rn.points.NumberOfPoints(), rn.GetRoads())
}

package costfunction

import (
	"math"
	"testing"

	"github.com/bofo90/RoadOptimization/pkg"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestRoadCostFunctionWeights(t *testing.T) {
	houses := []r2.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
	malls := []r2.Point{{X: 6, Y: 0}, {X: 6, Y: 8}}
	points := da.NewPointSet(houses, malls, r2.Point{X: 10, Y: 10})

	edges := []da.Edge{
		da.NewEdge(0, 1), // house-house
		da.NewEdge(1, 2), // house-mall
		da.NewEdge(2, 3), // mall-mall
	}

	testCases := []struct {
		name  string
		alpha float64
		want  []float64
	}{
		{name: "cheap local roads", alpha: 0.2, want: []float64{0.2 * 5, 0.2 * 5, 0.8 * 8}},
		{name: "balanced", alpha: 0.5, want: []float64{2.5, 2.5, 4}},
		{name: "cheap express roads", alpha: 0.9, want: []float64{0.9 * 5, 0.9 * 5, 0.1 * 8}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cf := NewRoadCostFunction(tt.alpha)
			weights := cf.GetWeights(points, edges)
			assert.InDeltaSlice(t, tt.want, weights, 1e-12)

			weighted := cf.WeightEdges(points, edges)
			for i, we := range weighted {
				assert.Equal(t, edges[i], we.GetEdge())
				assert.Equal(t, weights[i], we.GetWeight())
			}
		})
	}
}

func TestRoadCostFunctionLength(t *testing.T) {
	cf := NewRoadCostFunction(0.3)
	assert.Equal(t, 0.3, cf.GetAlpha())
	assert.Equal(t, 0.3, cf.GetRoadClassFactor(pkg.LOCAL_ROAD))
	assert.InDelta(t, 0.7, cf.GetRoadClassFactor(pkg.EXPRESS_ROAD), 1e-12)

	for _, class := range []pkg.RoadClass{pkg.LOCAL_ROAD, pkg.EXPRESS_ROAD} {
		length := math.Sqrt(13)
		weight := length * cf.GetRoadClassFactor(class)
		assert.InDelta(t, length, cf.GetLength(weight, class), 1e-12)
	}
}

func TestRoadImplementsEdgeAttributes(t *testing.T) {
	points := da.NewPointSet([]r2.Point{{X: 0, Y: 0}}, []r2.Point{{X: 0, Y: 2}}, r2.Point{X: 1, Y: 1})

	var road EdgeAttributes = NewRoad(points, da.NewEdge(0, 1))
	assert.Equal(t, 2.0, road.GetLength())
	assert.Equal(t, pkg.LOCAL_ROAD, road.GetRoadClass())

	var cf CostFunction = NewRoadCostFunction(0.25)
	assert.Equal(t, 0.5, cf.GetWeight(road))
}

package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/bofo90/RoadOptimization/pkg"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/pointgen"
	"github.com/bofo90/RoadOptimization/pkg/spanningtree"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(method spanningtree.Method) *Engine {
	return NewEngine(zap.NewNop(), method)
}

func TestConnectSmallTown(t *testing.T) {
	houses := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	malls := []r2.Point{{X: 5, Y: 5}}
	points := da.NewPointSet(houses, malls, r2.Point{X: 5, Y: 0})

	for _, method := range []spanningtree.Method{spanningtree.MethodPrim, spanningtree.MethodKruskal} {
		t.Run(string(method), func(t *testing.T) {
			network, err := newTestEngine(method).Connect(points, 0.5)
			require.NoError(t, err)

			assert.Equal(t, da.Index(3), network.GetAnchor())
			assert.Empty(t, network.GetPrunedMalls())

			assert.Equal(t, []da.Edge{da.NewEdge(0, 1), da.NewEdge(0, 2), da.NewEdge(1, 3)},
				da.EdgesOf(network.GetLocalRoads()))
			assert.Equal(t, []da.Edge{da.NewEdge(3, 4)}, da.EdgesOf(network.GetExpressRoads()))

			assert.InDelta(t, 2+math.Sqrt(41), network.GetLocalLength(), 1e-9)
			assert.InDelta(t, 5.0, network.GetExpressLength(), 1e-9)
			assert.InDelta(t, 0.5*(2+math.Sqrt(41))+0.5*5, network.GetCost(), 1e-9)

			g := network.Graph()
			assert.Equal(t, 2, g.GetDegree(3))
			assert.Equal(t, 1, g.GetDegree(4))
			assert.True(t, g.IsTree())
		})
	}
}

func TestConnectRandomTowns(t *testing.T) {
	testCases := []struct {
		name   string
		houses int
		malls  int
		seed   uint64
		alpha  float64
	}{
		{name: "few malls", houses: 30, malls: 3, seed: 1, alpha: 0.3},
		{name: "many malls", houses: 20, malls: 15, seed: 2, alpha: 0.2},
		{name: "expensive local roads", houses: 25, malls: 10, seed: 3, alpha: 0.8},
		{name: "only malls", houses: 0, malls: 6, seed: 4, alpha: 0.5},
		{name: "minimum size", houses: 3, malls: 1, seed: 5, alpha: 0.5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			points, err := pointgen.Generate(pointgen.NewConfig(tt.houses, tt.malls, tt.seed))
			require.NoError(t, err)

			prim, err := newTestEngine(spanningtree.MethodPrim).Connect(points, tt.alpha)
			require.NoError(t, err)
			kruskal, err := newTestEngine(spanningtree.MethodKruskal).Connect(points, tt.alpha)
			require.NoError(t, err)

			for _, network := range []*da.RoadNetwork{prim, kruskal} {
				// cost identity: alpha*L + (1-alpha)*E equals the summed edge weights
				assert.InDelta(t, network.TotalWeight(), network.GetCost(), 1e-9)

				g := network.Graph()
				assert.True(t, g.IsTree(), "network must be a tree")
				for h := 0; h < points.NumberOfHouses(); h++ {
					assert.Positive(t, g.GetDegree(da.Index(h)), "house %d must stay connected", h)
				}
				assert.Equal(t, 1, g.GetDegree(points.CityCenterID()))
				assert.True(t, g.HasEdge(da.NewEdge(network.GetAnchor(), points.CityCenterID())))

				for _, m := range network.GetConnectedMalls() {
					if m != network.GetAnchor() {
						assert.GreaterOrEqual(t, g.GetDegree(m), 2, "mall %d dangles", m)
					}
				}

				expressCount := len(network.GetExpressRoads())
				for _, road := range network.GetExpressRoads() {
					assert.False(t, points.IsHouse(road.GetU()) || points.IsHouse(road.GetV()))
				}
				assert.Positive(t, expressCount)
			}

			// random coordinates have no weight ties, so both methods build the same tree
			assert.InDelta(t, prim.GetCost(), kruskal.GetCost(), 1e-9)
			assert.Equal(t, prim.GetAnchor(), kruskal.GetAnchor())
		})
	}
}

func TestConnectOnlyMallsReducesToAnchor(t *testing.T) {
	points, err := pointgen.Generate(pointgen.NewConfig(0, 5, 9))
	require.NoError(t, err)

	network, err := newTestEngine("").Connect(points, 0.4)
	require.NoError(t, err)

	assert.Empty(t, network.GetLocalRoads())
	assert.Equal(t, []da.Edge{da.NewEdge(network.GetAnchor(), points.CityCenterID())},
		da.EdgesOf(network.GetExpressRoads()))
	assert.Len(t, network.GetPrunedMalls(), 4)
	assert.InDelta(t, points.Distance(network.GetAnchor(), points.CityCenterID()), network.GetExpressLength(), 1e-9)
}

func TestConnectInvalidInput(t *testing.T) {
	square := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	center := r2.Point{X: 3, Y: 3}

	testCases := []struct {
		name    string
		points  *da.PointSet
		alpha   float64
		wantErr error
	}{
		{
			name:    "alpha zero",
			points:  da.NewPointSet(square, []r2.Point{{X: 2, Y: 2}}, center),
			alpha:   0,
			wantErr: util.ErrInvalidParameter,
		},
		{
			name:    "alpha one",
			points:  da.NewPointSet(square, []r2.Point{{X: 2, Y: 2}}, center),
			alpha:   1,
			wantErr: util.ErrInvalidParameter,
		},
		{
			name:    "alpha NaN",
			points:  da.NewPointSet(square, []r2.Point{{X: 2, Y: 2}}, center),
			alpha:   math.NaN(),
			wantErr: util.ErrInvalidParameter,
		},
		{
			name:    "no malls",
			points:  da.NewPointSet(append(square, r2.Point{X: 2, Y: 2}), nil, center),
			alpha:   0.5,
			wantErr: util.ErrInvalidParameter,
		},
		{
			name:    "one mall and nothing else",
			points:  da.NewPointSet(nil, []r2.Point{{X: 2, Y: 2}}, center),
			alpha:   0.5,
			wantErr: util.ErrInvalidParameter,
		},
		{
			name:    "too few points",
			points:  da.NewPointSet(square[:2], []r2.Point{{X: 2, Y: 2}}, center),
			alpha:   0.5,
			wantErr: util.ErrInvalidParameter,
		},
		{
			name:    "nil point set",
			points:  nil,
			alpha:   0.5,
			wantErr: util.ErrInvalidParameter,
		},
		{
			name: "collinear",
			points: da.NewPointSet([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
				[]r2.Point{{X: 3, Y: 3}}, center),
			alpha:   0.5,
			wantErr: util.ErrDegenerateInput,
		},
		{
			name: "duplicate house",
			points: da.NewPointSet([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}},
				[]r2.Point{{X: 3, Y: 3}}, center),
			alpha:   0.5,
			wantErr: util.ErrDegenerateInput,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			network, err := newTestEngine(spanningtree.MethodPrim).Connect(tt.points, tt.alpha)
			assert.Nil(t, network)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewEngineDefaultsToPrim(t *testing.T) {
	assert.Equal(t, spanningtree.MethodPrim, NewEngine(zap.NewNop(), "").GetMSTMethod())
	assert.Equal(t, spanningtree.MethodKruskal, NewEngine(zap.NewNop(), spanningtree.MethodKruskal).GetMSTMethod())
}

func TestRoadClassOfGeneratedTown(t *testing.T) {
	points, err := pointgen.Generate(pointgen.NewConfig(10, 4, 77))
	require.NoError(t, err)
	network, err := newTestEngine(spanningtree.MethodPrim).Connect(points, 0.3)
	require.NoError(t, err)

	for _, road := range network.GetLocalRoads() {
		assert.Equal(t, pkg.LOCAL_ROAD, network.GetRoadClass(road.GetEdge()))
	}
	for _, road := range network.GetExpressRoads() {
		assert.Equal(t, pkg.EXPRESS_ROAD, network.GetRoadClass(road.GetEdge()))
	}
}

package usecases

import (
	"errors"
	"testing"

	"github.com/bofo90/RoadOptimization/pkg/engine"
	"github.com/bofo90/RoadOptimization/pkg/spanningtree"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(areaSize float64) *NetworkService {
	log := zap.NewNop()
	return NewNetworkService(log, engine.NewEngine(log, spanningtree.MethodKruskal), areaSize)
}

func TestComputeNetwork(t *testing.T) {
	houses := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	malls := []r2.Point{{X: 5, Y: 5}}

	network, err := newTestService(10).ComputeNetwork(houses, malls, r2.Point{X: 5, Y: 0}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 4, network.NumberOfRoads())
	assert.Equal(t, 3, network.GetPoints().NumberOfHouses())
}

func TestGenerateNetwork(t *testing.T) {
	testCases := []struct {
		name     string
		areaSize float64
	}{
		{name: "default area", areaSize: 0},
		{name: "large area", areaSize: 500},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			network, err := newTestService(tt.areaSize).GenerateNetwork(15, 4, 1, 0.4)
			require.NoError(t, err)
			assert.Equal(t, 15, network.GetPoints().NumberOfHouses())
			assert.Equal(t, 4, network.GetPoints().NumberOfMalls())
			assert.InDelta(t, network.TotalWeight(), network.GetCost(), 1e-9)
		})
	}

	_, err := newTestService(10).GenerateNetwork(0, 1, 1, 0.4)
	assert.True(t, errors.Is(err, util.ErrInvalidParameter))
}

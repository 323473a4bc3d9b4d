package usecases

import (
	"github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/pointgen"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

type NetworkService struct {
	log      *zap.Logger
	engine   NetworkEngine
	areaSize float64
}

func NewNetworkService(log *zap.Logger, engine NetworkEngine, areaSize float64) *NetworkService {
	return &NetworkService{
		log:      log,
		engine:   engine,
		areaSize: areaSize,
	}
}

func (ns *NetworkService) ComputeNetwork(houses, malls []r2.Point, cityCenter r2.Point,
	alpha float64) (*datastructure.RoadNetwork, error) {
	points := datastructure.NewPointSet(houses, malls, cityCenter)
	return ns.engine.Connect(points, alpha)
}

// GenerateNetwork. draws a random instance with the given seed and connects it.
func (ns *NetworkService) GenerateNetwork(houses, malls int, seed uint64,
	alpha float64) (*datastructure.RoadNetwork, error) {
	cfg := pointgen.NewConfig(houses, malls, seed)
	if ns.areaSize > 0 {
		cfg.AreaSize = ns.areaSize
	}

	points, err := pointgen.Generate(cfg)
	if err != nil {
		return nil, err
	}

	ns.log.Debug("generated points", zap.Int("houses", houses), zap.Int("malls", malls),
		zap.Uint64("seed", seed))
	return ns.engine.Connect(points, alpha)
}

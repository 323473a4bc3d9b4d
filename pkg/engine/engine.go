package engine

import (
	"math"

	"github.com/bofo90/RoadOptimization/pkg"
	"github.com/bofo90/RoadOptimization/pkg/costfunction"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/spanningtree"
	"github.com/bofo90/RoadOptimization/pkg/triangulation"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"go.uber.org/zap"
)

// Engine. builds cost-optimal road networks: triangulate houses and malls, weight the edges by road class,
// take the minimum spanning tree, wire the city center to its nearest mall and prune dangling malls.
type Engine struct {
	log       *zap.Logger
	mstMethod spanningtree.Method
}

func NewEngine(log *zap.Logger, mstMethod spanningtree.Method) *Engine {
	if mstMethod == "" {
		mstMethod = spanningtree.DefaultOptions().Method
	}
	return &Engine{
		log:       log,
		mstMethod: mstMethod,
	}
}

func (e *Engine) GetMSTMethod() spanningtree.Method {
	return e.mstMethod
}

// ValidateInput. alpha in (0, 1), at least one mall and at least four houses + malls
func ValidateInput(points *da.PointSet, alpha float64) error {
	if points == nil {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "point set is required")
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "alpha must lie strictly between 0 and 1, got %v", alpha)
	}
	if points.NumberOfMalls() < pkg.MIN_MALLS {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "there should be at least %d mall", pkg.MIN_MALLS)
	}
	if points.NumberOfSites() < pkg.MIN_TOTAL_POINTS {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "the number of houses and malls should be at least %d, got %d",
			pkg.MIN_TOTAL_POINTS, points.NumberOfSites())
	}
	return nil
}

// Connect. runs the whole pipeline for one alpha.
func (e *Engine) Connect(points *da.PointSet, alpha float64) (*da.RoadNetwork, error) {
	if err := ValidateInput(points, alpha); err != nil {
		return nil, err
	}
	costFunction := costfunction.NewRoadCostFunction(alpha)

	edges, err := triangulation.Triangulate(points.SiteCoords())
	if err != nil {
		return nil, err
	}
	e.log.Debug("delaunay triangulation built", zap.Int("points", points.NumberOfSites()),
		zap.Int("edges", len(edges)))

	weighted := costFunction.WeightEdges(points, edges)

	mst, mstWeight, err := spanningtree.Compute(points.NumberOfSites(), weighted, spanningtree.WithMethod(e.mstMethod))
	if err != nil {
		return nil, err
	}
	e.log.Debug("minimum spanning tree extracted", zap.String("method", string(e.mstMethod)),
		zap.Int("edges", len(mst)), zap.Float64("weight", mstWeight))

	grafted, anchor, centerDist := GraftCityCenter(points, mst, costFunction)
	e.log.Debug("city center connected", zap.Uint32("anchor", uint32(anchor)),
		zap.Float64("distance", centerDist))

	pruned, prunedMalls := PruneDanglingMalls(points, grafted, anchor)
	e.log.Debug("dangling malls pruned", zap.Int("removed_malls", len(prunedMalls)),
		zap.Int("edges", len(pruned)))

	localRoads, expressRoads, localLength, expressLength := ClassifyRoads(points, pruned, costFunction)

	network := da.NewRoadNetwork(points, alpha, localRoads, expressRoads, localLength, expressLength,
		anchor, prunedMalls)
	e.log.Info("road network built",
		zap.Float64("alpha", alpha),
		zap.Int("houses", points.NumberOfHouses()),
		zap.Int("malls", points.NumberOfMalls()),
		zap.Int("local_roads", len(localRoads)),
		zap.Int("express_roads", len(expressRoads)),
		zap.Float64("local_length", localLength),
		zap.Float64("express_length", expressLength),
		zap.Float64("cost", network.GetCost()))
	return network, nil
}

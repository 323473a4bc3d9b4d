package usecases

import (
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
)

type NetworkEngine interface {
	Connect(points *da.PointSet, alpha float64) (*da.RoadNetwork, error)
}

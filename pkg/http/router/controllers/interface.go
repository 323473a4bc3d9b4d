package controllers

import (
	"github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/golang/geo/r2"
)

type NetworkService interface {
	ComputeNetwork(houses, malls []r2.Point, cityCenter r2.Point, alpha float64) (*datastructure.RoadNetwork, error)
	GenerateNetwork(houses, malls int, seed uint64, alpha float64) (*datastructure.RoadNetwork, error)
}

package costfunction

import (
	"github.com/bofo90/RoadOptimization/pkg"
)

type EdgeAttributes interface {
	GetLength() float64
	GetRoadClass() pkg.RoadClass
}

type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
	GetRoadClassFactor(class pkg.RoadClass) float64
}

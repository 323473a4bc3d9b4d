package datastructure

import (
	"github.com/bofo90/RoadOptimization/pkg"
	"github.com/golang/geo/r2"
)

// Point. a house, mall or city center. immutable once created.
type Point struct {
	id    Index
	kind  pkg.PointKind
	coord r2.Point
}

func NewPoint(id Index, kind pkg.PointKind, x, y float64) Point {
	return Point{
		id:    id,
		kind:  kind,
		coord: r2.Point{X: x, Y: y},
	}
}

func (p Point) GetID() Index {
	return p.id
}

func (p Point) GetKind() pkg.PointKind {
	return p.kind
}

func (p Point) GetCoord() r2.Point {
	return p.coord
}

func (p Point) GetX() float64 {
	return p.coord.X
}

func (p Point) GetY() float64 {
	return p.coord.Y
}

func (p Point) IsHouse() bool {
	return p.kind == pkg.HOUSE
}

func (p Point) IsMall() bool {
	return p.kind == pkg.MALL
}

func (p Point) IsCityCenter() bool {
	return p.kind == pkg.CITY_CENTER
}

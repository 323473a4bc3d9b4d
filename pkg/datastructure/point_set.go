package datastructure

import (
	"github.com/bofo90/RoadOptimization/pkg"
	"github.com/bofo90/RoadOptimization/pkg/geo"
	"github.com/golang/geo/r2"
)

// PointSet. houses, malls and the city center addressed by one flat index:
// houses [0, H), malls [H, H+M), city center H+M.
type PointSet struct {
	points    []Point
	numHouses int
	numMalls  int
}

func NewPointSet(houses, malls []r2.Point, cityCenter r2.Point) *PointSet {
	points := make([]Point, 0, len(houses)+len(malls)+1)
	for _, h := range houses {
		points = append(points, NewPoint(Index(len(points)), pkg.HOUSE, h.X, h.Y))
	}
	for _, m := range malls {
		points = append(points, NewPoint(Index(len(points)), pkg.MALL, m.X, m.Y))
	}
	points = append(points, NewPoint(Index(len(points)), pkg.CITY_CENTER, cityCenter.X, cityCenter.Y))

	return &PointSet{
		points:    points,
		numHouses: len(houses),
		numMalls:  len(malls),
	}
}

func (ps *PointSet) NumberOfHouses() int {
	return ps.numHouses
}

func (ps *PointSet) NumberOfMalls() int {
	return ps.numMalls
}

// NumberOfSites. houses + malls, i.e. every point except the city center
func (ps *PointSet) NumberOfSites() int {
	return ps.numHouses + ps.numMalls
}

func (ps *PointSet) NumberOfPoints() int {
	return len(ps.points)
}

func (ps *PointSet) CityCenterID() Index {
	return Index(ps.numHouses + ps.numMalls)
}

func (ps *PointSet) CityCenter() Point {
	return ps.points[ps.CityCenterID()]
}

func (ps *PointSet) GetPoint(id Index) Point {
	return ps.points[id]
}

func (ps *PointSet) GetCoord(id Index) r2.Point {
	return ps.points[id].coord
}

func (ps *PointSet) GetKind(id Index) pkg.PointKind {
	return ps.points[id].kind
}

func (ps *PointSet) IsHouse(id Index) bool {
	return ps.points[id].IsHouse()
}

func (ps *PointSet) IsMall(id Index) bool {
	return ps.points[id].IsMall()
}

func (ps *PointSet) Houses() []Point {
	return append([]Point(nil), ps.points[:ps.numHouses]...)
}

func (ps *PointSet) Malls() []Point {
	return append([]Point(nil), ps.points[ps.numHouses:ps.numHouses+ps.numMalls]...)
}

// Points. copy of every point including the city center
func (ps *PointSet) Points() []Point {
	return append([]Point(nil), ps.points...)
}

// SiteCoords. coordinates of houses followed by malls, indexed like the point ids
func (ps *PointSet) SiteCoords() []r2.Point {
	coords := make([]r2.Point, ps.NumberOfSites())
	for i := range coords {
		coords[i] = ps.points[i].coord
	}
	return coords
}

func (ps *PointSet) Distance(u, v Index) float64 {
	return geo.EuclideanDistance(ps.points[u].coord, ps.points[v].coord)
}

// GetRoadClass. an edge touching at least one house is a local road, everything else is express
func (ps *PointSet) GetRoadClass(e Edge) pkg.RoadClass {
	if ps.IsHouse(e.u) || ps.IsHouse(e.v) {
		return pkg.LOCAL_ROAD
	}
	return pkg.EXPRESS_ROAD
}

package controllers

import (
	"github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/geo"
	"github.com/golang/geo/r2"
)

type coordinate struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

func (c coordinate) toPoint() r2.Point {
	return r2.Point{X: *c.X, Y: *c.Y}
}

func toPoints(cs []coordinate) []r2.Point {
	points := make([]r2.Point, len(cs))
	for i, c := range cs {
		points[i] = c.toPoint()
	}
	return points
}

type computeNetworkRequest struct {
	Houses     []coordinate `json:"houses" validate:"dive"`
	Malls      []coordinate `json:"malls" validate:"required,min=1,dive"`
	CityCenter *coordinate  `json:"city_center" validate:"required"`
	Alpha      float64      `json:"alpha" validate:"gt=0,lt=1"`
}

type generateNetworkRequest struct {
	Houses int     `validate:"gte=0,lte=5000"`
	Malls  int     `validate:"gte=1,lte=5000"`
	Seed   uint64  `validate:"gte=0"`
	Alpha  float64 `validate:"gt=0,lt=1"`
}

type roadResponse struct {
	U        int     `json:"u"`
	V        int     `json:"v"`
	Length   float64 `json:"length"`
	Polyline string  `json:"polyline"`
}

type networkResponse struct {
	LocalRoads    []roadResponse `json:"local_roads"`
	ExpressRoads  []roadResponse `json:"express_roads"`
	LocalLength   float64        `json:"local_length"`
	ExpressLength float64        `json:"express_length"`
	Cost          float64        `json:"cost"`
	Anchor        int            `json:"anchor"`
	PrunedMalls   []int          `json:"pruned_malls"`
}

func newRoadResponses(points *datastructure.PointSet, roads []datastructure.WeightedEdge) []roadResponse {
	resp := make([]roadResponse, 0, len(roads))
	for _, road := range roads {
		u, v := road.GetU(), road.GetV()
		resp = append(resp, roadResponse{
			U:        int(u),
			V:        int(v),
			Length:   points.Distance(u, v),
			Polyline: geo.PolylineFromPoints([]r2.Point{points.GetCoord(u), points.GetCoord(v)}),
		})
	}
	return resp
}

func NewNetworkResponse(network *datastructure.RoadNetwork) networkResponse {
	points := network.GetPoints()
	pruned := make([]int, 0, len(network.GetPrunedMalls()))
	for _, m := range network.GetPrunedMalls() {
		pruned = append(pruned, int(m))
	}

	return networkResponse{
		LocalRoads:    newRoadResponses(points, network.GetLocalRoads()),
		ExpressRoads:  newRoadResponses(points, network.GetExpressRoads()),
		LocalLength:   network.GetLocalLength(),
		ExpressLength: network.GetExpressLength(),
		Cost:          network.GetCost(),
		Anchor:        int(network.GetAnchor()),
		PrunedMalls:   pruned,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

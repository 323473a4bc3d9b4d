// Package report renders road networks for people and other tools: GeoJSON feature collections and
// result file names.
package report

import (
	"fmt"
	"os"
	"strconv"

	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToFeatureCollection. one Point feature per house, mall and city center and one LineString per road.
// plane coordinates are written as they are; the collection is not georeferenced.
func ToFeatureCollection(network *da.RoadNetwork) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	points := network.GetPoints()

	for _, p := range points.Points() {
		f := geojson.NewFeature(orb.Point{p.GetX(), p.GetY()})
		f.ID = int(p.GetID())
		f.Properties["kind"] = p.GetKind().String()
		fc.Append(f)
	}

	for _, road := range network.GetRoads() {
		u := points.GetCoord(road.GetU())
		v := points.GetCoord(road.GetV())
		f := geojson.NewFeature(orb.LineString{{u.X, u.Y}, {v.X, v.Y}})
		f.Properties["class"] = network.GetRoadClass(road.GetEdge()).String()
		f.Properties["from"] = int(road.GetU())
		f.Properties["to"] = int(road.GetV())
		f.Properties["length"] = points.Distance(road.GetU(), road.GetV())
		f.Properties["weight"] = road.GetWeight()
		fc.Append(f)
	}

	fc.ExtraMembers = geojson.Properties{
		"title":          Title(network),
		"alpha":          network.GetAlpha(),
		"cost":           network.GetCost(),
		"local_length":   network.GetLocalLength(),
		"express_length": network.GetExpressLength(),
	}
	return fc
}

func WriteGeoJSON(filename string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// Title. "Cost: 12.34"
func Title(network *da.RoadNetwork) string {
	return fmt.Sprintf("Cost: %.2f", network.GetCost())
}

// ResultFileName. Graph_{points}points_{alpha}alpha_{seed}seed{ext}, points counts the city center too
func ResultFileName(numPoints int, alpha float64, seed uint64, ext string) string {
	return fmt.Sprintf("Graph_%dpoints_%salpha_%dseed%s", numPoints,
		strconv.FormatFloat(alpha, 'f', -1, 64), seed, ext)
}

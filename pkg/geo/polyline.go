package geo

import (
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-polyline"
)

// PolylineFromPoints. encoded polyline of the path, (y,x) order like (lat,lon)
func PolylineFromPoints(path []r2.Point) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Y, p.X})
	}
	return string(polyline.EncodeCoords(coords))
}

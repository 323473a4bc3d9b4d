package geo

import (
	"math"

	"github.com/golang/geo/r2"
)

// EuclideanDistance. straight-line distance between two points in the plane
func EuclideanDistance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// BoundingRect. smallest axis-aligned rectangle containing all points
func BoundingRect(points []r2.Point) r2.Rect {
	return r2.RectFromPoints(points...)
}

// Extent. largest side of the bounding rectangle of points
func Extent(points []r2.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	size := BoundingRect(points).Size()
	return math.Max(size.X, size.Y)
}

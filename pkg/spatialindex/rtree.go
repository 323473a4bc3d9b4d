package spatialindex

import (
	"github.com/golang/geo/r2"
	"github.com/tidwall/rtree"
)

// Rtree. 2D r-tree of axis-aligned boxes, each carrying an item of type T
type Rtree[T any] struct {
	tr *rtree.RTreeG[T]
}

func NewRtree[T any]() *Rtree[T] {
	var tr rtree.RTreeG[T]
	return &Rtree[T]{
		tr: &tr,
	}
}

// Insert. index item under the bounding box rect
func (rt *Rtree[T]) Insert(rect r2.Rect, item T) {
	rt.tr.Insert([2]float64{rect.X.Lo, rect.Y.Lo}, [2]float64{rect.X.Hi, rect.Y.Hi}, item)
}

// SearchPoint. every item whose box contains p
func (rt *Rtree[T]) SearchPoint(p r2.Point) []T {
	return rt.SearchRect(r2.RectFromPoints(p))
}

// SearchRect. every item whose box intersects rect
func (rt *Rtree[T]) SearchRect(rect r2.Rect) []T {
	results := make([]T, 0, 16)
	rt.tr.Search([2]float64{rect.X.Lo, rect.Y.Lo}, [2]float64{rect.X.Hi, rect.Y.Hi},
		func(min, max [2]float64, data T) bool {
			results = append(results, data)
			return true
		})
	return results
}

func (rt *Rtree[T]) Len() int {
	return rt.tr.Len()
}

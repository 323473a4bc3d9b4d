package geo

import (
	"math"

	"github.com/golang/geo/r2"
)

// Geometric predicates, Lischinski "Incremental Delaunay Triangulation" p. 10

// TriArea. twice the signed area of triangle abc, positive if a,b,c are counterclockwise
func TriArea(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func Ccw(a, b, c r2.Point) bool {
	return TriArea(a, b, c) > 0
}

// InCircle. true if d lies strictly inside the circumcircle of the counterclockwise triangle abc.
// coordinates are translated to d first to keep the determinant well conditioned.
func InCircle(a, b, c, d r2.Point) bool {
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)

	det := ad.Dot(ad)*bd.Cross(cd) -
		bd.Dot(bd)*ad.Cross(cd) +
		cd.Dot(cd)*ad.Cross(bd)
	return det > 0
}

// Circumcircle. center and radius of the circle through a, b, c.
// ok is false if the triangle is (nearly) degenerate.
func Circumcircle(a, b, c r2.Point, eps float64) (center r2.Point, radius float64, ok bool) {
	ba := b.Sub(a)
	ca := c.Sub(a)
	d := 2 * ba.Cross(ca)
	if math.Abs(d) <= eps {
		return r2.Point{}, 0, false
	}

	bLen := ba.Dot(ba)
	cLen := ca.Dot(ca)
	ux := (ca.Y*bLen - ba.Y*cLen) / d
	uy := (ba.X*cLen - ca.X*bLen) / d

	offset := r2.Point{X: ux, Y: uy}
	return a.Add(offset), offset.Norm(), true
}

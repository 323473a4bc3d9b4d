package geo

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestTriArea(t *testing.T) {
	testCases := []struct {
		name    string
		a, b, c r2.Point
		want    float64
	}{
		{
			name: "counterclockwise unit triangle",
			a:    r2.Point{X: 0, Y: 0},
			b:    r2.Point{X: 1, Y: 0},
			c:    r2.Point{X: 0, Y: 1},
			want: 1,
		},
		{
			name: "clockwise unit triangle",
			a:    r2.Point{X: 0, Y: 0},
			b:    r2.Point{X: 0, Y: 1},
			c:    r2.Point{X: 1, Y: 0},
			want: -1,
		},
		{
			name: "collinear",
			a:    r2.Point{X: 0, Y: 0},
			b:    r2.Point{X: 1, Y: 1},
			c:    r2.Point{X: 3, Y: 3},
			want: 0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TriArea(tt.a, tt.b, tt.c), 1e-12)
			assert.Equal(t, tt.want > 0, Ccw(tt.a, tt.b, tt.c))
		})
	}
}

func TestInCircle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 2, Y: 0}
	c := r2.Point{X: 0, Y: 2}

	testCases := []struct {
		name string
		d    r2.Point
		want bool
	}{
		{name: "circumcenter", d: r2.Point{X: 1, Y: 1}, want: true},
		{name: "near vertex inside", d: r2.Point{X: 1.9, Y: 0.1}, want: true},
		{name: "on the circle", d: r2.Point{X: 2, Y: 2}, want: false},
		{name: "far outside", d: r2.Point{X: 5, Y: 5}, want: false},
		{name: "below", d: r2.Point{X: 1, Y: -1}, want: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InCircle(a, b, c, tt.d))
		})
	}
}

func TestCircumcircle(t *testing.T) {
	center, radius, ok := Circumcircle(r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0}, r2.Point{X: 0, Y: 2}, 1e-12)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, center.X, 1e-12)
	assert.InDelta(t, 1.0, center.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, radius, 1e-12)

	_, _, ok = Circumcircle(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2}, 1e-12)
	assert.False(t, ok)
}

func TestDistanceAndExtent(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanDistance(r2.Point{X: 0, Y: 0}, r2.Point{X: 3, Y: 4}), 1e-12)

	points := []r2.Point{{X: 1, Y: 1}, {X: 4, Y: 2}, {X: 2, Y: 7}}
	assert.InDelta(t, 6.0, Extent(points), 1e-12)
	assert.Zero(t, Extent(nil))

	rect := BoundingRect(points)
	assert.Equal(t, 1.0, rect.X.Lo)
	assert.Equal(t, 4.0, rect.X.Hi)
	assert.Equal(t, 1.0, rect.Y.Lo)
	assert.Equal(t, 7.0, rect.Y.Hi)
}

package triangulation

import (
	"errors"
	"sort"
	"testing"

	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/geo"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomCoords(n int, seed uint64) []r2.Point {
	rd := rand.New(rand.NewSource(seed))
	coords := make([]r2.Point, n)
	for i := range coords {
		coords[i] = r2.Point{X: rd.Float64() * 10, Y: rd.Float64() * 10}
	}
	return coords
}

func TestTriangulateSmallSets(t *testing.T) {
	testCases := []struct {
		name   string
		coords []r2.Point
		want   []da.Edge
	}{
		{
			name:   "single triangle",
			coords: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
			want:   []da.Edge{da.NewEdge(0, 1), da.NewEdge(0, 2), da.NewEdge(1, 2)},
		},
		{
			name:   "right triangle with a far mall",
			coords: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 5}},
			want: []da.Edge{da.NewEdge(0, 1), da.NewEdge(0, 2), da.NewEdge(1, 2),
				da.NewEdge(1, 3), da.NewEdge(2, 3)},
		},
		{
			name:   "point inside a triangle",
			coords: []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 1, Y: 1}},
			want: []da.Edge{da.NewEdge(0, 1), da.NewEdge(0, 2), da.NewEdge(0, 3),
				da.NewEdge(1, 2), da.NewEdge(1, 3), da.NewEdge(2, 3)},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := Triangulate(tt.coords)
			require.NoError(t, err)
			assert.Equal(t, tt.want, edges)
		})
	}
}

func TestTriangulateRandomPoints(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 2024} {
		coords := randomCoords(60, seed)

		d, err := NewDelaunay(coords)
		require.NoError(t, err)
		assert.Equal(t, len(coords), d.NumberOfPoints())

		edges := d.Edges()
		g := da.NewGraph(len(coords), edges)
		assert.True(t, g.IsConnected(), "seed %d", seed)
		for v := 0; v < len(coords); v++ {
			assert.Positive(t, g.GetDegree(da.Index(v)), "seed %d point %d", seed, v)
		}

		// full triangulation: 3n-3-h edges and 2n-2-h triangles
		h := hullSize(coords)
		assert.Len(t, edges, 3*len(coords)-3-h, "seed %d", seed)
		assert.Len(t, d.Triangles(), 2*len(coords)-2-h, "seed %d", seed)

		for i := 1; i < len(edges); i++ {
			assert.True(t, edges[i-1].Less(edges[i]), "edges must be sorted and unique")
		}
	}
}

// hullSize. number of convex hull vertices, collinear boundary points excluded
func hullSize(coords []r2.Point) int {
	pts := append([]r2.Point(nil), coords...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	hull := make([]r2.Point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && geo.TriArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && geo.TriArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return len(hull) - 1
}

func TestTriangulateIsComplete(t *testing.T) {
	// a triangulation of n points with h on the hull has exactly 3n-3-h edges
	for n := 4; n <= 40; n++ {
		for seed := uint64(0); seed < 60; seed++ {
			coords := randomCoords(n, seed*1000+uint64(n))

			edges, err := Triangulate(coords)
			require.NoError(t, err, "n %d seed %d", n, seed)
			require.Equal(t, 3*n-3-hullSize(coords), len(edges), "n %d seed %d", n, seed)
		}
	}
}

func TestTriangulateThinSets(t *testing.T) {
	testCases := []struct {
		name      string
		coords    []r2.Point
		wantEdges int
		want      []da.Edge
	}{
		{
			name:      "collinear base with a low apex",
			coords:    []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 1.5, Y: 1e-3}},
			wantEdges: 7,
			want: []da.Edge{da.NewEdge(0, 1), da.NewEdge(0, 4), da.NewEdge(1, 2), da.NewEdge(1, 4),
				da.NewEdge(2, 3), da.NewEdge(2, 4), da.NewEdge(3, 4)},
		},
		{
			name:      "flat zigzag",
			coords:    []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1e-6}, {X: 2, Y: 0}, {X: 3, Y: 1e-6}},
			wantEdges: 5,
		},
		{
			name:      "square with a point on one side",
			coords:    []r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}},
			wantEdges: 10,
			want: []da.Edge{da.NewEdge(0, 1), da.NewEdge(0, 4), da.NewEdge(0, 5), da.NewEdge(1, 2),
				da.NewEdge(1, 5), da.NewEdge(2, 3), da.NewEdge(2, 5), da.NewEdge(3, 4), da.NewEdge(3, 5),
				da.NewEdge(4, 5)},
		},
		{
			name:      "long thin strip",
			coords:    []r2.Point{{X: 0, Y: 0}, {X: 100, Y: 0.01}, {X: 50, Y: 0.025}, {X: 25, Y: -0.01}, {X: 75, Y: 0.03}},
			wantEdges: 7,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDelaunay(tt.coords)
			require.NoError(t, err)

			edges := d.Edges()
			assert.Len(t, edges, tt.wantEdges)
			if tt.want != nil {
				assert.Equal(t, tt.want, edges)
			}

			g := da.NewGraph(len(tt.coords), edges)
			for v := range tt.coords {
				assert.Positive(t, g.GetDegree(da.Index(v)), "point %d", v)
			}
			for _, tri := range d.Triangles() {
				assert.True(t, geo.Ccw(tt.coords[tri[0]], tt.coords[tri[1]], tt.coords[tri[2]]))
			}
		})
	}
}

func TestTriangulateEmptyCircumcircle(t *testing.T) {
	coords := randomCoords(80, 99)
	d, err := NewDelaunay(coords)
	require.NoError(t, err)

	for _, tri := range d.Triangles() {
		a, b, c := coords[tri[0]], coords[tri[1]], coords[tri[2]]
		assert.True(t, geo.Ccw(a, b, c), "triangle %v must be counterclockwise", tri)

		center, radius, ok := geo.Circumcircle(a, b, c, 0)
		require.True(t, ok)
		for i, p := range coords {
			if da.Index(i) == tri[0] || da.Index(i) == tri[1] || da.Index(i) == tri[2] {
				continue
			}
			assert.GreaterOrEqual(t, geo.EuclideanDistance(center, p), radius-1e-9,
				"point %d lies inside the circumcircle of %v", i, tri)
		}
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	testCases := []struct {
		name   string
		coords []r2.Point
	}{
		{name: "two points", coords: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{name: "duplicate points", coords: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}},
		{name: "all collinear", coords: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}},
		{name: "horizontal line", coords: []r2.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 5, Y: 2}, {X: 3, Y: 2}}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := Triangulate(tt.coords)
			assert.Nil(t, edges)
			require.Error(t, err)
			assert.True(t, errors.Is(err, util.ErrDegenerateInput))
			assert.Equal(t, util.ErrDegenerateInput, util.ErrorCode(err))
		})
	}
}

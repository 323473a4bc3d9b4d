package triangulation

import (
	"math"

	"github.com/bofo90/RoadOptimization/pkg"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/geo"
	"github.com/bofo90/RoadOptimization/pkg/spatialindex"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/golang/geo/r2"
)

// triangle. vertex indices in counterclockwise order. a ghost triangle (a, b, ghost) sits on the hull edge a->b,
// with the outside of the hull on the left of a->b; its third vertex is the point at infinity.
type triangle struct {
	a, b, c int
	alive   bool
}

func (t *triangle) vertices() [3]int {
	return [3]int{t.a, t.b, t.c}
}

type directedEdge struct {
	from, to int
}

func undirectedKey(from, to int) [2]int {
	if from > to {
		from, to = to, from
	}
	return [2]int{from, to}
}

// Delaunay. Bowyer-Watson incremental Delaunay triangulation with a single vertex at infinity.
// Finite triangles whose circumcircle contains the inserted point are found through an r-tree of
// circumcircle bounding boxes; ghost triangles along the hull are scanned directly.
type Delaunay struct {
	n         int
	ghost     int
	vertices  []r2.Point
	triangles []*triangle
	hull      []*triangle
	index     *spatialindex.Rtree[*triangle]
	bounds    r2.Rect
	eps       float64
}

// NewDelaunay. triangulates coords. returns ErrDegenerateInput if the points do not admit a triangulation
// in which every point is a vertex of some triangle (fewer than 3 points, duplicates, all collinear).
func NewDelaunay(coords []r2.Point) (*Delaunay, error) {
	n := len(coords)
	if n < 3 {
		return nil, util.WrapErrorf(nil, util.ErrDegenerateInput, "triangulation needs at least 3 points, got %d", n)
	}

	seen := make(map[r2.Point]int, n)
	for i, p := range coords {
		if j, ok := seen[p]; ok {
			return nil, util.WrapErrorf(nil, util.ErrDegenerateInput, "points %d and %d are duplicates at (%v, %v)",
				j, i, p.X, p.Y)
		}
		seen[p] = i
	}

	extent := geo.Extent(coords)
	if extent <= pkg.GEOMETRY_EPS {
		return nil, util.WrapErrorf(nil, util.ErrDegenerateInput, "all %d points coincide", n)
	}

	d := &Delaunay{
		n:        n,
		ghost:    n,
		vertices: append([]r2.Point(nil), coords...),
		index:    spatialindex.NewRtree[*triangle](),
		bounds:   geo.BoundingRect(coords),
		eps:      pkg.GEOMETRY_EPS * extent * extent,
	}

	// first triangle: points 0, 1 and the first point not collinear with them
	apex := -1
	for i := 2; i < n; i++ {
		if math.Abs(geo.TriArea(coords[0], coords[1], coords[i])) > d.eps {
			apex = i
			break
		}
	}
	if apex < 0 {
		return nil, util.WrapErrorf(nil, util.ErrDegenerateInput, "all %d points are collinear", n)
	}

	a, b := 0, 1
	if !geo.Ccw(coords[a], coords[b], coords[apex]) {
		a, b = b, a
	}
	d.addTriangle(a, b, apex)
	d.addTriangle(b, a, d.ghost)
	d.addTriangle(apex, b, d.ghost)
	d.addTriangle(a, apex, d.ghost)

	for i := 2; i < n; i++ {
		if i != apex {
			d.insertSite(i)
		}
	}

	participates := make([]bool, n)
	for _, t := range d.triangles {
		if !t.alive || d.isGhost(t) {
			continue
		}
		for _, v := range t.vertices() {
			participates[v] = true
		}
	}

	excluded := make([]int, 0)
	for i, ok := range participates {
		if !ok {
			excluded = append(excluded, i)
		}
	}
	if len(excluded) > 0 {
		return nil, util.WrapErrorf(nil, util.ErrDegenerateInput,
			"%d points are not part of any triangle (first: %d), input is degenerate", len(excluded), excluded[0])
	}

	return d, nil
}

// Triangulate. deduplicated undirected edges of the Delaunay triangulation, sorted by (u, v).
func Triangulate(coords []r2.Point) ([]da.Edge, error) {
	d, err := NewDelaunay(coords)
	if err != nil {
		return nil, err
	}
	return d.Edges(), nil
}

func (d *Delaunay) insertSite(i int) {
	p := d.vertices[i]

	bad := make([]*triangle, 0, 8)
	for _, t := range d.index.SearchPoint(p) {
		if t.alive && geo.InCircle(d.vertices[t.a], d.vertices[t.b], d.vertices[t.c], p) {
			bad = append(bad, t)
		}
	}
	for _, t := range d.hull {
		if t.alive && d.ghostConflict(t, p) {
			bad = append(bad, t)
		}
	}

	// boundary of the cavity = edges of bad triangles not shared by two bad triangles
	count := make(map[[2]int]int, len(bad)*3)
	for _, t := range bad {
		for _, e := range triangleEdges(t) {
			count[undirectedKey(e.from, e.to)]++
		}
	}
	for _, t := range bad {
		t.alive = false
	}
	for _, t := range bad {
		for _, e := range triangleEdges(t) {
			if count[undirectedKey(e.from, e.to)] == 1 {
				d.addTriangle(e.from, e.to, i)
			}
		}
	}

	hull := d.hull[:0]
	for _, t := range d.hull {
		if t.alive {
			hull = append(hull, t)
		}
	}
	d.hull = hull
}

// ghostConflict. the circumcircle of a ghost triangle degenerates to the open half plane outside its hull
// edge, plus the open edge itself.
func (d *Delaunay) ghostConflict(t *triangle, p r2.Point) bool {
	a, b := d.vertices[t.a], d.vertices[t.b]
	area := geo.TriArea(a, b, p)
	if area != 0 {
		return area > 0
	}
	ab := b.Sub(a)
	proj := p.Sub(a).Dot(ab)
	return proj > 0 && proj < ab.Dot(ab)
}

func triangleEdges(t *triangle) [3]directedEdge {
	return [3]directedEdge{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

func (d *Delaunay) addTriangle(a, b, c int) {
	// keep the ghost vertex last, rotation preserves the orientation
	switch d.ghost {
	case a:
		a, b, c = b, c, a
	case b:
		a, b, c = c, a, b
	}

	t := &triangle{a: a, b: b, c: c, alive: true}
	d.triangles = append(d.triangles, t)

	if c == d.ghost {
		d.hull = append(d.hull, t)
		return
	}

	center, radius, ok := geo.Circumcircle(d.vertices[a], d.vertices[b], d.vertices[c], d.eps)
	if !ok || math.IsInf(radius, 0) || math.IsNaN(radius) {
		// sliver: make it visible to every search
		d.index.Insert(d.bounds, t)
		return
	}
	// padded so rounding in the center never hides a point lying on the circle
	side := 2*radius*(1+1e-9) + d.eps
	d.index.Insert(r2.RectFromCenterSize(center, r2.Point{X: side, Y: side}), t)
}

func (d *Delaunay) isGhost(t *triangle) bool {
	return t.c == d.ghost
}

// Triangles. counterclockwise vertex triples of the final triangulation
func (d *Delaunay) Triangles() [][3]da.Index {
	tris := make([][3]da.Index, 0, len(d.triangles))
	for _, t := range d.triangles {
		if t.alive && !d.isGhost(t) {
			tris = append(tris, [3]da.Index{da.Index(t.a), da.Index(t.b), da.Index(t.c)})
		}
	}
	return tris
}

// Edges. all three edges of every triangle, normalized to (min, max) and deduplicated
func (d *Delaunay) Edges() []da.Edge {
	seen := make(map[da.Edge]struct{})
	edges := make([]da.Edge, 0, 3*d.n)
	for _, tri := range d.Triangles() {
		for _, e := range []da.Edge{da.NewEdge(tri[0], tri[1]), da.NewEdge(tri[1], tri[2]), da.NewEdge(tri[0], tri[2])} {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	da.SortEdges(edges)
	return edges
}

func (d *Delaunay) NumberOfPoints() int {
	return d.n
}

package polyraster

import (
	"math"

	"github.com/gogpu/polyraster/internal/raster"
)

// Polygon is an ordered list of vertices. It is implicitly closed: the
// segment from the last vertex back to the first is part of the outline.
// Coincident vertices are kept as given.
type Polygon []Point

// Poly builds a polygon from alternating x, y coordinates.
// A trailing odd coordinate is ignored.
func Poly(coords ...float64) Polygon {
	p := make(Polygon, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		p = append(p, Point{X: coords[i], Y: coords[i+1]})
	}
	return p
}

// Edges returns the number of edges, which equals the vertex count.
func (p Polygon) Edges() int {
	return len(p)
}

// Bounds returns the minimum and maximum vertex coordinates.
// ok is false for an empty polygon.
func (p Polygon) Bounds() (lo, hi Point, ok bool) {
	if len(p) == 0 {
		return Point{}, Point{}, false
	}
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range p {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi, true
}

// rasterPoints converts the polygon to the rasterizer's point type.
func (p Polygon) rasterPoints() []raster.Point {
	pts := make([]raster.Point, len(p))
	for i, v := range p {
		pts[i] = raster.Point{X: v.X, Y: v.Y}
	}
	return pts
}

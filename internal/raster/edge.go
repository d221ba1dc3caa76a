package raster

// Edge is a polygon edge kept in polygon vertex order.
type Edge struct {
	x0, y0 float64 // Start point
	x1, y1 float64 // End point
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 Point) Edge {
	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y}
}

// Crosses reports whether the scanline y crosses the edge.
//
// The test is half-open: the lower endpoint counts, the upper one does not.
// A vertex lying exactly on the scanline is counted once, and horizontal
// edges never cross.
func (e Edge) Crosses(y float64) bool {
	return (e.y0 <= y && e.y1 > y) || (e.y0 > y && e.y1 <= y)
}

// XAtY returns the x coordinate where the edge meets the scanline y.
// Only meaningful when Crosses(y) is true.
func (e Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
}

// buildEdges returns the closed edge list of pts: edge i runs from vertex i
// to vertex i+1, wrapping around.
func buildEdges(dst []Edge, pts []Point) []Edge {
	dst = dst[:0]
	n := len(pts)
	for i := 0; i < n; i++ {
		dst = append(dst, NewEdge(pts[i], pts[(i+1)%n]))
	}
	return dst
}

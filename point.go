package polyraster

// Point represents a 2D screen-space position.
// Coordinates are not bounds-checked; the framebuffer drops out-of-range writes.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

package raster

// DrawPolygonOutline draws the closed outline of pts: one segment per vertex,
// the last one joining the final vertex back to the first. Fewer than two
// vertices draw nothing; two vertices draw the same segment twice.
//
// Each vertex is truncated to integer pixels and clamped independently into
// the canvas before the segment is drawn. Off-canvas vertices therefore bend
// the segment rather than clip it.
func DrawPolygonOutline[C any](t Target[C], pts []Point, c C) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		x1, y1 := clampVertex(t, pts[i])
		x2, y2 := clampVertex(t, pts[(i+1)%n])
		DrawLine(t, x1, y1, x2, y2, c)
	}
}

// clampVertex truncates p toward zero and clamps it into the target bounds.
func clampVertex[C any](t Target[C], p Point) (x, y int) {
	x = clampInt(truncInt(p.X), 0, t.Width()-1)
	y = clampInt(truncInt(p.Y), 0, t.Height()-1)
	return x, y
}

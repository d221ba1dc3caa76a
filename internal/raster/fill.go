package raster

import (
	"math"
	"slices"
)

// FillStats summarizes a single FillPolygon call.
type FillStats struct {
	Scanlines int // scanlines visited
	Spans     int // spans filled
	Pixels    int // pixels covered by the spans
}

// Filler performs scanline polygon fills. It keeps scratch buffers between
// calls to avoid per-scanline allocation; it holds no drawing state.
// The zero value is ready to use. A Filler is not safe for concurrent use.
type Filler struct {
	edges []Edge
	xs    []float64
}

// FillPolygon fills pts with the even-odd parity rule using a throwaway
// Filler. See Fill.
func FillPolygon[C any](t Target[C], pts []Point, c C) FillStats {
	var f Filler
	return Fill(&f, t, pts, c)
}

// Fill scanline-fills the polygon pts into t.
//
// The scan range is the polygon's bounding box truncated to integers and
// clamped into the canvas. For every integer scanline the crossings with all
// edges are collected, sorted ascending and filled pairwise as inclusive spans
// [trunc(x[2i]), trunc(x[2i+1])], clamped to the box. A trailing unpaired
// crossing is ignored.
//
// Cost is O(rows * edges * log(edges)) per polygon.
func Fill[C any](f *Filler, t Target[C], pts []Point, c C) FillStats {
	var stats FillStats
	if len(pts) == 0 {
		return stats
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	x0 := max(0, truncInt(minX))
	y0 := max(0, truncInt(minY))
	x1 := min(t.Width()-1, truncInt(maxX))
	y1 := min(t.Height()-1, truncInt(maxY))

	f.edges = buildEdges(f.edges, pts)

	for y := y0; y <= y1; y++ {
		stats.Scanlines++
		fy := float64(y)

		xs := f.xs[:0]
		for _, e := range f.edges {
			if e.Crosses(fy) {
				xs = append(xs, e.XAtY(fy))
			}
		}
		slices.Sort(xs)
		f.xs = xs

		for i := 0; i+1 < len(xs); i += 2 {
			start := max(truncInt(xs[i]), x0)
			end := min(truncInt(xs[i+1]), x1)
			if start > end {
				continue
			}
			fillSpan(t, start, end, y, c)
			stats.Spans++
			stats.Pixels += end - start + 1
		}
	}
	return stats
}

// truncInt truncates v toward zero, saturating at the int range so that
// infinite or huge coordinates stay ordered.
func truncInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

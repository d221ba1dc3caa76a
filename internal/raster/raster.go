// Package raster provides integer line drawing and scanline polygon filling.
//
// The functions are generic over the pixel type so the package does not import
// the public color type. All bounds enforcement is delegated to the Target:
// coordinates outside the canvas are passed through and must be dropped there.
package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Target is the pixel sink the rasterizer writes into.
type Target[C any] interface {
	Width() int
	Height() int
	SetPixel(x, y int, c C)
}

// SpanFiller is an optional interface that targets can implement for optimized
// span filling. The span [x1, x2] is inclusive and already clamped to the canvas.
type SpanFiller[C any] interface {
	FillSpan(x1, x2, y int, c C)
}

// fillSpan fills the inclusive span [x1, x2] on row y.
func fillSpan[C any](t Target[C], x1, x2, y int, c C) {
	if x1 > x2 {
		return
	}
	if sf, ok := t.(SpanFiller[C]); ok {
		sf.FillSpan(x1, x2, y, c)
		return
	}
	for x := x1; x <= x2; x++ {
		t.SetPixel(x, y, c)
	}
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package polyraster

import (
	"fmt"
	"math"
	"testing"
)

// BenchmarkFillSpanVsSetPixel compares FillSpan performance against repeated SetPixel calls.
func BenchmarkFillSpanVsSetPixel(b *testing.B) {
	fb, _ := NewFramebuffer(1000, 1000)

	benchmarks := []struct {
		name   string
		pixels int
	}{
		{"10px", 10},
		{"100px", 100},
		{"500px", 500},
	}

	for _, bm := range benchmarks {
		b.Run("SetPixel_"+bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for x := 0; x < bm.pixels; x++ {
					fb.SetPixel(x, 500, Red)
				}
			}
		})

		b.Run("FillSpan_"+bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				fb.FillSpan(0, bm.pixels-1, 500, Red)
			}
		})
	}
}

// BenchmarkRender measures a full render pass over polygons with growing edge counts.
func BenchmarkRender(b *testing.B) {
	for _, edges := range []int{4, 32, 256} {
		poly := make(Polygon, edges)
		for i := range poly {
			a := 2 * math.Pi * float64(i) / float64(edges)
			poly[i] = Pt(400+350*math.Cos(a), 400+350*math.Sin(a))
		}
		fb, _ := NewFramebuffer(800, 800)
		ctx := NewContext(fb)

		b.Run(fmt.Sprint(edges), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				ctx.Render([]Polygon{poly})
			}
		})
	}
}

func BenchmarkSnapshot(b *testing.B) {
	fb, _ := NewFramebuffer(800, 800)
	b.ReportAllocs()
	for b.Loop() {
		_ = fb.Snapshot()
	}
}

package raster

import (
	"fmt"
	"testing"
)

type pixel struct{ x, y int }

// testPixmap records writes and drops out-of-range ones, like the real framebuffer.
type testPixmap struct {
	width, height int
	pixels        map[pixel]int
	writes        int
	dropped       int
}

func newTestPixmap(w, h int) *testPixmap {
	return &testPixmap{width: w, height: h, pixels: make(map[pixel]int)}
}

func (p *testPixmap) Width() int  { return p.width }
func (p *testPixmap) Height() int { return p.height }

func (p *testPixmap) SetPixel(x, y int, c int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		p.dropped++
		return
	}
	p.writes++
	p.pixels[pixel{x, y}] = c
}

func (p *testPixmap) has(x, y int) bool {
	_, ok := p.pixels[pixel{x, y}]
	return ok
}

// spanPixmap additionally implements SpanFiller.
type spanPixmap struct {
	*testPixmap
	spans int
}

func (p *spanPixmap) FillSpan(x1, x2, y int, c int) {
	p.spans++
	for x := x1; x <= x2; x++ {
		p.SetPixel(x, y, c)
	}
}

func sameSet(a, b map[pixel]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func TestDrawLine_SinglePixel(t *testing.T) {
	pm := newTestPixmap(10, 10)
	DrawLine(pm, 5, 5, 5, 5, 1)

	if len(pm.pixels) != 1 || !pm.has(5, 5) {
		t.Errorf("DrawLine(5,5,5,5) plotted %v, want only (5,5)", pm.pixels)
	}
	if pm.writes != 1 {
		t.Errorf("writes = %d, want 1", pm.writes)
	}
}

func TestDrawLine_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		wantCount      int
	}{
		{"horizontal", 1, 3, 8, 3, 8},
		{"vertical", 4, 9, 4, 0, 10},
		{"diagonal", 0, 0, 6, 6, 7},
		{"anti-diagonal", 6, 0, 0, 6, 7},
		{"shallow", 0, 0, 9, 2, 10},
		{"steep", 1, 0, 3, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := newTestPixmap(10, 10)
			DrawLine(pm, tt.x1, tt.y1, tt.x2, tt.y2, 1)

			if !pm.has(tt.x1, tt.y1) || !pm.has(tt.x2, tt.y2) {
				t.Errorf("endpoints not plotted: %v", pm.pixels)
			}
			if len(pm.pixels) != tt.wantCount {
				t.Errorf("plotted %d pixels, want %d", len(pm.pixels), tt.wantCount)
			}
		})
	}
}

func TestDrawLine_KnownPixels(t *testing.T) {
	pm := newTestPixmap(10, 10)
	DrawLine(pm, 0, 0, 2, 1, 1)

	for _, p := range []pixel{{0, 0}, {1, 0}, {2, 1}} {
		if !pm.has(p.x, p.y) {
			t.Errorf("pixel %v not plotted", p)
		}
	}
	if len(pm.pixels) != 3 {
		t.Errorf("plotted %d pixels, want 3", len(pm.pixels))
	}
}

func TestDrawLine_Symmetric(t *testing.T) {
	ends := []pixel{
		{0, 0}, {2, 1}, {7, 3}, {3, 7}, {9, 9}, {0, 9}, {9, 0}, {5, 2}, {1, 8}, {4, 4},
	}

	for _, a := range ends {
		for _, b := range ends {
			t.Run(fmt.Sprintf("%v-%v", a, b), func(t *testing.T) {
				fwd := newTestPixmap(10, 10)
				rev := newTestPixmap(10, 10)
				DrawLine(fwd, a.x, a.y, b.x, b.y, 1)
				DrawLine(rev, b.x, b.y, a.x, a.y, 1)

				if !sameSet(fwd.pixels, rev.pixels) {
					t.Errorf("forward %v != reverse %v", fwd.pixels, rev.pixels)
				}
			})
		}
	}
}

func TestDrawLine_OutOfBounds(t *testing.T) {
	pm := newTestPixmap(10, 10)
	DrawLine(pm, -5, 5, 15, 5, 1)

	if len(pm.pixels) != 10 {
		t.Errorf("in-bounds pixels = %d, want 10", len(pm.pixels))
	}
	if pm.dropped != 11 {
		t.Errorf("dropped = %d, want 11", pm.dropped)
	}
}

func TestDrawPolygonOutline_Degenerate(t *testing.T) {
	for _, pts := range [][]Point{nil, {{X: 3, Y: 3}}} {
		pm := newTestPixmap(10, 10)
		DrawPolygonOutline(pm, pts, 1)
		if pm.writes != 0 {
			t.Errorf("%d vertices: writes = %d, want 0", len(pts), pm.writes)
		}
	}
}

func TestDrawPolygonOutline_TwoVerticesDrawsTwice(t *testing.T) {
	pm := newTestPixmap(10, 10)
	DrawPolygonOutline(pm, []Point{{X: 1, Y: 1}, {X: 6, Y: 1}}, 1)

	if len(pm.pixels) != 6 {
		t.Errorf("distinct pixels = %d, want 6", len(pm.pixels))
	}
	if pm.writes != 12 {
		t.Errorf("writes = %d, want 12", pm.writes)
	}
}

func TestDrawPolygonOutline_Square(t *testing.T) {
	pm := newTestPixmap(10, 10)
	DrawPolygonOutline(pm, []Point{{X: 2, Y: 2}, {X: 7, Y: 2}, {X: 7, Y: 7}, {X: 2, Y: 7}}, 1)

	for i := 2; i <= 7; i++ {
		for _, p := range []pixel{{i, 2}, {i, 7}, {2, i}, {7, i}} {
			if !pm.has(p.x, p.y) {
				t.Errorf("border pixel %v missing", p)
			}
		}
	}
	if pm.has(4, 4) {
		t.Error("outline must not touch interior pixel (4,4)")
	}
	if len(pm.pixels) != 20 {
		t.Errorf("outline pixels = %d, want 20", len(pm.pixels))
	}
}

func TestDrawPolygonOutline_ClampsVertices(t *testing.T) {
	pm := newTestPixmap(10, 10)
	// (-5.5, 4) truncates to (-5, 4) then clamps to (0, 4); (20, 4) clamps to (9, 4).
	DrawPolygonOutline(pm, []Point{{X: -5.5, Y: 4}, {X: 20, Y: 4}}, 1)

	if pm.dropped != 0 {
		t.Errorf("dropped = %d, want 0 after clamping", pm.dropped)
	}
	for x := 0; x < 10; x++ {
		if !pm.has(x, 4) {
			t.Errorf("pixel (%d,4) missing", x)
		}
	}
}

func TestDrawPolygonOutline_Truncates(t *testing.T) {
	pm := newTestPixmap(10, 10)
	DrawPolygonOutline(pm, []Point{{X: 1.9, Y: 1.9}, {X: 1.2, Y: 1.7}}, 1)

	if len(pm.pixels) != 1 || !pm.has(1, 1) {
		t.Errorf("plotted %v, want only (1,1)", pm.pixels)
	}
}

func TestFillPolygon_Square(t *testing.T) {
	pm := newTestPixmap(12, 12)
	FillPolygon(pm, []Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}, 1)

	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			if !pm.has(x, y) {
				t.Errorf("interior pixel (%d,%d) not filled", x, y)
			}
		}
	}
	for _, p := range []pixel{{1, 5}, {9, 5}, {5, 1}, {5, 9}, {0, 0}, {11, 11}} {
		if pm.has(p.x, p.y) {
			t.Errorf("exterior pixel %v filled", p)
		}
	}
}

func TestFillPolygon_Triangle(t *testing.T) {
	pm := newTestPixmap(12, 12)
	FillPolygon(pm, []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, 1)

	if !pm.has(2, 2) {
		t.Error("interior pixel (2,2) not filled")
	}
	if pm.has(9, 9) {
		t.Error("exterior pixel (9,9) filled")
	}
	// Row 9 crosses the hypotenuse at x=1.
	if !pm.has(0, 9) || !pm.has(1, 9) || pm.has(2, 9) {
		t.Errorf("row 9 span wrong: (0,9)=%v (1,9)=%v (2,9)=%v", pm.has(0, 9), pm.has(1, 9), pm.has(2, 9))
	}
}

func TestFillPolygon_HalfOpenScanline(t *testing.T) {
	pm := newTestPixmap(12, 12)
	FillPolygon(pm, []Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}, 1)

	// The bottom edge row is not crossed by the vertical edges.
	for x := 0; x < 12; x++ {
		if pm.has(x, 8) {
			t.Errorf("pixel (%d,8) filled on the bottom scanline", x)
		}
	}
}

func TestFillPolygon_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single", []Point{{X: 4, Y: 4}}},
		{"horizontal segment", []Point{{X: 1, Y: 4}, {X: 8, Y: 4}}},
		{"off canvas", []Point{{X: -20, Y: -20}, {X: -10, Y: -20}, {X: -10, Y: -10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := newTestPixmap(10, 10)
			FillPolygon(pm, tt.pts, 1)
			if pm.writes != 0 || pm.dropped != 0 {
				t.Errorf("writes = %d, dropped = %d, want none", pm.writes, pm.dropped)
			}
		})
	}
}

func TestFillPolygon_ClipsToCanvas(t *testing.T) {
	pm := newTestPixmap(10, 10)
	stats := FillPolygon(pm, []Point{{X: -5, Y: -5}, {X: 15, Y: -5}, {X: 15, Y: 15}, {X: -5, Y: 15}}, 1)

	if len(pm.pixels) != 100 {
		t.Errorf("filled %d pixels, want the whole 10x10 canvas", len(pm.pixels))
	}
	if pm.dropped != 0 {
		t.Errorf("dropped = %d, want 0", pm.dropped)
	}
	if stats.Scanlines != 10 || stats.Spans != 10 || stats.Pixels != 100 {
		t.Errorf("stats = %+v, want 10 scanlines, 10 spans, 100 pixels", stats)
	}
}

func TestFillPolygon_Concave(t *testing.T) {
	// A "U" shape: two prongs joined at the bottom.
	pm := newTestPixmap(12, 12)
	FillPolygon(pm, []Point{
		{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 6}, {X: 7, Y: 6},
		{X: 7, Y: 1}, {X: 10, Y: 1}, {X: 10, Y: 10}, {X: 1, Y: 10},
	}, 1)

	if !pm.has(2, 3) || !pm.has(8, 3) {
		t.Error("prongs not filled")
	}
	if pm.has(5, 3) {
		t.Error("notch between prongs filled")
	}
	if !pm.has(5, 8) {
		t.Error("base not filled")
	}
}

func TestFillPolygon_UsesSpanFiller(t *testing.T) {
	pm := &spanPixmap{testPixmap: newTestPixmap(12, 12)}
	stats := FillPolygon[int](pm, []Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}, 1)

	if pm.spans == 0 {
		t.Fatal("FillSpan was not used")
	}
	if pm.spans != stats.Spans {
		t.Errorf("FillSpan calls = %d, stats.Spans = %d", pm.spans, stats.Spans)
	}
}

func TestFiller_Reuse(t *testing.T) {
	var f Filler
	tri := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	sq := []Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}

	a := newTestPixmap(12, 12)
	Fill(&f, a, tri, 1)
	Fill(&f, a, sq, 2)

	b := newTestPixmap(12, 12)
	FillPolygon(b, tri, 1)
	FillPolygon(b, sq, 2)

	if len(a.pixels) != len(b.pixels) {
		t.Fatalf("reused filler covered %d pixels, fresh %d", len(a.pixels), len(b.pixels))
	}
	for k, v := range b.pixels {
		if a.pixels[k] != v {
			t.Errorf("pixel %v = %d, want %d", k, a.pixels[k], v)
		}
	}
}

func TestEdge_Crosses(t *testing.T) {
	tests := []struct {
		name string
		e    Edge
		y    float64
		want bool
	}{
		{"lower endpoint counts", NewEdge(Point{X: 0, Y: 2}, Point{X: 0, Y: 6}), 2, true},
		{"upper endpoint excluded", NewEdge(Point{X: 0, Y: 2}, Point{X: 0, Y: 6}), 6, false},
		{"reversed lower endpoint", NewEdge(Point{X: 0, Y: 6}, Point{X: 0, Y: 2}), 2, true},
		{"reversed upper endpoint", NewEdge(Point{X: 0, Y: 6}, Point{X: 0, Y: 2}), 6, false},
		{"horizontal", NewEdge(Point{X: 0, Y: 4}, Point{X: 9, Y: 4}), 4, false},
		{"above", NewEdge(Point{X: 0, Y: 2}, Point{X: 0, Y: 6}), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Crosses(tt.y); got != tt.want {
				t.Errorf("Crosses(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestEdge_XAtY(t *testing.T) {
	e := NewEdge(Point{X: 10, Y: 0}, Point{X: 0, Y: 10})
	if got := e.XAtY(9); got != 1 {
		t.Errorf("XAtY(9) = %v, want 1", got)
	}
	if got := e.XAtY(0); got != 10 {
		t.Errorf("XAtY(0) = %v, want 10", got)
	}
}

package polyraster

import (
	"log/slog"

	"github.com/gogpu/polyraster/internal/raster"
)

// Context is the render context. It owns the framebuffer for the duration of
// a render pass together with the background, outline color and fill palette,
// so no drawing state lives in package globals.
type Context struct {
	fb         *Framebuffer
	background Color
	outline    Color
	palette    Palette
	filler     raster.Filler
}

// RenderStats summarizes a Render call.
type RenderStats struct {
	Polygons int // polygons processed
	Spans    int // fill spans written
	Pixels   int // fill pixels written, overlaps counted again
}

// FillStats summarizes a single FillPolygon call.
type FillStats struct {
	Scanlines int // scanlines visited
	Spans     int // spans filled
	Pixels    int // pixels covered by the spans
}

// NewContext creates a render context drawing into fb.
//
//	fb, _ := polyraster.NewFramebuffer(800, 800)
//	ctx := polyraster.NewContext(fb)
//	ctx.Render(polygons)
func NewContext(fb *Framebuffer, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Context{
		fb:         fb,
		background: options.background,
		outline:    options.outline,
		palette:    options.palette,
	}
}

// Framebuffer returns the framebuffer the context draws into.
func (ctx *Context) Framebuffer() *Framebuffer {
	return ctx.fb
}

// Background returns the clear color used by Render.
func (ctx *Context) Background() Color {
	return ctx.background
}

// Outline returns the outline color.
func (ctx *Context) Outline() Color {
	return ctx.outline
}

// Palette returns the fill color cycle.
func (ctx *Context) Palette() Palette {
	return ctx.palette
}

// DrawLine draws an integer Bresenham line, both endpoints included.
func (ctx *Context) DrawLine(x1, y1, x2, y2 int, c Color) {
	raster.DrawLine[Color](ctx.fb, x1, y1, x2, y2, c)
}

// DrawPolygonOutline draws the closed outline of p in the outline color.
// Vertices are truncated and clamped into the canvas before each segment.
func (ctx *Context) DrawPolygonOutline(p Polygon) {
	raster.DrawPolygonOutline[Color](ctx.fb, p.rasterPoints(), ctx.outline)
}

// FillPolygon scanline-fills p with c using the even-odd parity rule.
func (ctx *Context) FillPolygon(p Polygon, c Color) FillStats {
	fs := raster.Fill[Color](&ctx.filler, ctx.fb, p.rasterPoints(), c)
	return FillStats{Scanlines: fs.Scanlines, Spans: fs.Spans, Pixels: fs.Pixels}
}

// Render clears the framebuffer to the background color, then for each
// polygon in order draws its outline and fills it with palette color
// index mod palette length. Fills may cover earlier outlines.
func (ctx *Context) Render(polygons []Polygon) RenderStats {
	log := Logger()
	ctx.fb.Clear(ctx.background)

	var stats RenderStats
	for i, p := range polygons {
		fill := ctx.palette.At(i)
		pts := p.rasterPoints()

		raster.DrawPolygonOutline[Color](ctx.fb, pts, ctx.outline)
		fs := raster.Fill[Color](&ctx.filler, ctx.fb, pts, fill)

		stats.Polygons++
		stats.Spans += fs.Spans
		stats.Pixels += fs.Pixels

		if len(p) < 2 {
			log.Debug("polyraster: degenerate polygon", slog.Int("index", i), slog.Int("vertices", len(p)))
			continue
		}
		log.Debug("polyraster: polygon rendered",
			slog.Int("index", i),
			slog.Int("vertices", len(p)),
			slog.String("fill", fill.String()),
			slog.Int("scanlines", fs.Scanlines),
			slog.Int("spans", fs.Spans),
		)
	}

	log.Debug("polyraster: render pass done",
		slog.Int("width", ctx.fb.Width()),
		slog.Int("height", ctx.fb.Height()),
		slog.Int("polygons", stats.Polygons),
		slog.Int("pixels", stats.Pixels),
	)
	return stats
}

package polyraster

import "fmt"

// Scene is a complete render input: canvas size, colors and polygons.
type Scene struct {
	Width      int
	Height     int
	Background Color
	Outline    Color
	Fills      Palette
	Polygons   []Polygon
}

// Render renders the scene into a new framebuffer.
func (s Scene) Render() (*Framebuffer, RenderStats, error) {
	fb, err := NewFramebuffer(s.Width, s.Height)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("polyraster: scene: %w", err)
	}
	if s.Fills.Len() == 0 {
		return nil, RenderStats{}, fmt.Errorf("polyraster: scene: %w", ErrEmptyPalette)
	}

	ctx := NewContext(fb,
		WithBackground(s.Background),
		WithOutline(s.Outline),
		WithPalette(s.Fills),
	)
	stats := ctx.Render(s.Polygons)
	return fb, stats, nil
}

// Render clears fb to Black and renders polygons with white outlines and the
// given fill colors used cyclically. fills must not be empty.
func Render(fb *Framebuffer, polygons []Polygon, fills ...Color) (RenderStats, error) {
	palette, err := NewPalette(fills...)
	if err != nil {
		return RenderStats{}, err
	}
	return NewContext(fb, WithPalette(palette)).Render(polygons), nil
}

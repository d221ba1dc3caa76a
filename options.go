package polyraster

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := polyraster.NewContext(fb,
//	    polyraster.WithBackground(polyraster.Black),
//	    polyraster.WithPalette(palette),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	background Color
	outline    Color
	palette    Palette
}

// defaultOptions returns the default context options: black background,
// white outlines, green/black fill cycle.
func defaultOptions() contextOptions {
	return contextOptions{
		background: Black,
		outline:    White,
		palette:    DefaultPalette,
	}
}

// WithBackground sets the color Render clears the framebuffer to.
func WithBackground(c Color) ContextOption {
	return func(o *contextOptions) {
		o.background = c
	}
}

// WithOutline sets the color polygon outlines are drawn with.
func WithOutline(c Color) ContextOption {
	return func(o *contextOptions) {
		o.outline = c
	}
}

// WithPalette sets the fill color cycle. An empty palette is ignored.
func WithPalette(p Palette) ContextOption {
	return func(o *contextOptions) {
		if p.Len() > 0 {
			o.palette = p
		}
	}
}

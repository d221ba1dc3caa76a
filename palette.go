package polyraster

import "slices"

// Palette is a non-empty, ordered list of fill colors used cyclically:
// polygon i is filled with color i mod len.
type Palette struct {
	colors []Color
}

// DefaultPalette is green followed by black.
var DefaultPalette = Palette{colors: []Color{Green, Black}}

// NewPalette creates a palette from the given colors.
func NewPalette(colors ...Color) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	return Palette{colors: slices.Clone(colors)}, nil
}

// Len returns the number of colors in the cycle.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the fill color for polygon index i. The zero Palette falls back
// to DefaultPalette.
func (p Palette) At(i int) Color {
	colors := p.colors
	if len(colors) == 0 {
		colors = DefaultPalette.colors
	}
	i %= len(colors)
	if i < 0 {
		i += len(colors)
	}
	return colors[i]
}

// Colors returns a copy of the palette colors.
func (p Palette) Colors() []Color {
	return slices.Clone(p.colors)
}

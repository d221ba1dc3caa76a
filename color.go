package polyraster

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrInvalidHex is returned by Hex for malformed color strings.
var ErrInvalidHex = errors.New("polyraster: invalid hex color")

// Number is any integer or floating point type accepted by RGB.
type Number interface {
	constraints.Integer | constraints.Float
}

// Color represents an opaque color with 8-bit red, green and blue channels.
// Colors are values: arithmetic returns a new Color and never wraps.
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

// RGB creates a color, clamping each channel independently into [0, 255].
// NaN channels become 0.
func RGB[T Number](r, g, b T) Color {
	return Color{
		R: clampChannel(float64(r)),
		G: clampChannel(float64(g)),
		B: clampChannel(float64(b)),
	}
}

// Add returns the per-channel saturating sum of a and b.
func Add(a, b Color) Color {
	return Color{
		R: addChannel(a.R, b.R),
		G: addChannel(a.G, b.G),
		B: addChannel(a.B, b.B),
	}
}

// Scale multiplies every channel of c by factor, truncates toward zero and
// clamps the result into [0, 255]. Negative products become 0.
func Scale(c Color, factor float64) Color {
	return Color{
		R: clampChannel(math.Trunc(float64(c.R) * factor)),
		G: clampChannel(math.Trunc(float64(c.G) * factor)),
		B: clampChannel(math.Trunc(float64(c.B) * factor)),
	}
}

// Add returns the saturating sum of c and o.
func (c Color) Add(o Color) Color { return Add(c, o) }

// Scale returns c scaled by factor. See Scale.
func (c Color) Scale(factor float64) Color { return Scale(c, factor) }

// String renders the color as "RGB(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func addChannel(a, b uint8) uint8 {
	return uint8(clamp(int(a)+int(b), 0, 255))
}

// clampChannel restricts x to [0, 255] before narrowing to a byte.
func clampChannel(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(clamp(x, 0, 255))
}

// clamp restricts v to [lo, hi].
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

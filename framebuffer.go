package polyraster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
)

// Framebuffer is a fixed-size grid of colors stored in row-major order.
//
// SetPixel is the single bounds check of the drawing pipeline: writes outside
// the canvas are silently dropped. A Framebuffer is not safe for concurrent
// mutation.
type Framebuffer struct {
	width  int
	height int
	pix    []Color
}

// maxPixels bounds width*height so pixel indexes and allocation sizes never
// overflow int.
const maxPixels = math.MaxInt32

// NewFramebuffer creates a framebuffer with every pixel set to Black.
// Non-positive sizes and sizes over maxPixels cells are rejected.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 || width > maxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Clear fills the entire framebuffer with a color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// SetPixel sets the color of a single pixel. Out-of-range writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pix[y*fb.width+x] = c
}

// GetPixel returns the color of a single pixel.
func (fb *Framebuffer) GetPixel(x, y int) (Color, error) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, x, y, fb.width, fb.height)
	}
	return fb.pix[y*fb.width+x], nil
}

// FillSpan sets the inclusive run [x1, x2] on row y, dropping the parts that
// fall outside the canvas.
func (fb *Framebuffer) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= fb.height {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, fb.width-1)
	if x1 > x2 {
		return
	}
	row := fb.pix[y*fb.width : (y+1)*fb.width]
	for x := x1; x <= x2; x++ {
		row[x] = c
	}
}

// Snapshot returns a copy of all pixels in row-major order: row 0 left to
// right, then row 1, and so on.
func (fb *Framebuffer) Snapshot() []Color {
	return slices.Clone(fb.pix)
}

// Equal reports whether two framebuffers have the same size and pixels.
func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	return fb.width == other.width && fb.height == other.height && slices.Equal(fb.pix, other.pix)
}

// ToImage converts the framebuffer to an opaque image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, c := range fb.pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xff
	}
	return img
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("polyraster: create file: %w", err)
	}

	if err := png.Encode(f, fb.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("polyraster: encode PNG: %w", err)
	}

	return f.Close()
}

// At implements the image.Image interface. Out-of-range pixels are Black.
func (fb *Framebuffer) At(x, y int) color.Color {
	c, err := fb.GetPixel(x, y)
	if err != nil {
		return Black
	}
	return c
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

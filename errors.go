package polyraster

import "errors"

var (
	// ErrInvalidDimension is returned when a framebuffer is created with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("polyraster: invalid framebuffer dimension")

	// ErrOutOfRange is returned by GetPixel for coordinates outside the canvas.
	ErrOutOfRange = errors.New("polyraster: pixel out of range")

	// ErrEmptyPalette is returned when a palette is created without colors.
	ErrEmptyPalette = errors.New("polyraster: palette must not be empty")
)

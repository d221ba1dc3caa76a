// Package polyraster rasterizes closed 2D polygons into a fixed-size
// framebuffer.
//
// # Overview
//
// A render pass clears a Framebuffer to a background color, then for every
// polygon draws its outline with integer Bresenham lines and fills its
// interior with a scanline even-odd fill. Fill colors are taken from a
// Palette cyclically by polygon index.
//
//	fb, err := polyraster.NewFramebuffer(20, 20)
//	if err != nil {
//	    return err
//	}
//	square := polyraster.Poly(0, 0, 10, 0, 10, 10, 0, 10)
//	_, err = polyraster.Render(fb, []polyraster.Polygon{square}, polyraster.Green)
//
// The bmp package serializes the result as an uncompressed 24-bit bitmap.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Vertex coordinates are real-valued and may lie outside the canvas. Writes
// outside the canvas are dropped by the framebuffer; nothing in the drawing
// pipeline returns an error.
//
// # Performance
//
// Filling costs O(rows * edges * log(edges)) per polygon. The renderer is
// single-threaded and a Framebuffer must not be drawn into concurrently.
package polyraster

// Version is the current version of the library.
const Version = "0.1.0"

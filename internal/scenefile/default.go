package scenefile

import "github.com/gogpu/polyraster"

// Default returns the built-in scene: an 800x800 black canvas with white
// outlines, a green/black fill cycle and two polygons.
func Default() polyraster.Scene {
	return polyraster.Scene{
		Width:      800,
		Height:     800,
		Background: polyraster.Black,
		Outline:    polyraster.White,
		Fills:      polyraster.DefaultPalette,
		Polygons: []polyraster.Polygon{
			polyraster.Poly(
				413, 177, 448, 159, 502, 88, 553, 53, 535, 36, 676, 37,
				660, 52, 750, 145, 761, 179, 672, 192, 659, 214, 615, 214,
				632, 230, 580, 230, 597, 215, 552, 214, 517, 144, 466, 180,
			),
			polyraster.Poly(682, 175, 708, 120, 735, 148, 739, 170),
		},
	}
}

package raster

// DrawLine plots the Bresenham line from (x1, y1) to (x2, y2), both endpoints
// included.
//
// The endpoints are visited in a canonical order (smaller x first, then smaller
// y), so swapping them plots exactly the same pixels.
func DrawLine[C any](t Target[C], x1, y1, x2, y2 int, c C) {
	if x1 > x2 || (x1 == x2 && y1 > y2) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		t.SetPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package core

// Surface is an abstract drawable target addressed in pixels.
// Game code only ever blits onto a Surface; the platform decides how pixels
// map to terminal cells.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int
	// Height returns the surface height in pixels.
	Height() int
	// Blit draws img with its top-left corner at pixel (x, y).
	Blit(img Image, x, y int, flip bool)
}

// Canvas is a Surface projected onto a Screen, where each cell covers
// CellW×CellH pixels.
type Canvas struct {
	screen *Screen
	cellW  int
	cellH  int
}

// NewCanvas creates a canvas over the screen. Non-positive cell sizes fall
// back to 1.
func NewCanvas(s *Screen, cellW, cellH int) *Canvas {
	return &Canvas{
		screen: s,
		cellW:  Max(cellW, 1),
		cellH:  Max(cellH, 1),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// CellSize returns the pixel size of one cell.
func (c *Canvas) CellSize() (int, int) {
	return c.cellW, c.cellH
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.screen.Width() * c.cellW
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.screen.Height() * c.cellH
}

// ToCell converts a pixel position to the cell containing it.
func (c *Canvas) ToCell(x, y int) (int, int) {
	return FloorDiv(float64(x), c.cellW), FloorDiv(float64(y), c.cellH)
}

// Blit draws img at pixel (x, y). Art is anchored at the cell containing the
// top-left pixel; plain images fill every cell they overlap.
func (c *Canvas) Blit(img Image, x, y int, flip bool) {
	if flip {
		img = img.Flipped()
	}

	cx, cy := c.ToCell(x, y)

	if len(img.Art) > 0 {
		for j, row := range img.Art {
			i := 0
			for _, r := range row {
				if r != ' ' {
					c.screen.SetColored(cx+i, cy+j, r, img.Color)
				}
				i++
			}
		}
		return
	}

	if img.W <= 0 || img.H <= 0 {
		return
	}
	ex, ey := c.ToCell(x+img.W-1, y+img.H-1)
	glyph := img.Glyph
	if glyph == 0 {
		glyph = '█'
	}
	for row := cy; row <= ey; row++ {
		for col := cx; col <= ex; col++ {
			c.screen.SetColored(col, row, glyph, img.Color)
		}
	}
}

// Shade overwrites every cell outside the circle of the given pixel radius
// around (x, y) with the fill rune. Used for the level transition wipe.
func (c *Canvas) Shade(x, y, radius int, fill rune) {
	for row := 0; row < c.screen.Height(); row++ {
		for col := 0; col < c.screen.Width(); col++ {
			px := col*c.cellW + c.cellW/2 - x
			py := row*c.cellH + c.cellH/2 - y
			if px*px+py*py > radius*radius {
				c.screen.SetColored(col, row, fill, ColorGray)
			}
		}
	}
}

package tilemap

import "github.com/vovakirdan/tui-platformer/internal/core"

// Render draws off-grid tiles, then the grid cells inside the viewport.
// offset is the camera position in pixels.
func (m *Tilemap) Render(surf core.Surface, offset core.Point) {
	if m.assets == nil {
		return
	}

	for _, t := range m.offgrid {
		img, err := m.assets.Image(string(t.Type), t.Variant)
		if err != nil {
			continue
		}
		surf.Blit(img, int(t.Pos.X)-offset.X, int(t.Pos.Y)-offset.Y, false)
	}

	ts := m.TileSize
	x0 := core.FloorDiv(float64(offset.X), ts)
	x1 := core.FloorDiv(float64(offset.X+surf.Width()), ts)
	y0 := core.FloorDiv(float64(offset.Y), ts)
	y1 := core.FloorDiv(float64(offset.Y+surf.Height()), ts)

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			t, ok := m.tiles[core.Pt(x, y)]
			if !ok {
				continue
			}
			img, err := m.assets.Image(string(t.Type), t.Variant)
			if err != nil {
				continue
			}
			surf.Blit(img, x*ts-offset.X, y*ts-offset.Y, false)
		}
	}
}

package tilemap

import "github.com/vovakirdan/tui-platformer/internal/core"

// side is a bit set of orthogonal directions.
type side uint8

const (
	sideLeft side = 1 << iota
	sideRight
	sideUp
	sideDown
)

var sideOffsets = [...]struct {
	s   side
	off core.Point
}{
	{sideRight, core.Pt(1, 0)},
	{sideLeft, core.Pt(-1, 0)},
	{sideUp, core.Pt(0, -1)},
	{sideDown, core.Pt(0, 1)},
}

// autotileMap picks a variant from the set of same-type neighbors.
var autotileMap = map[side]int{
	sideRight | sideDown:                     0,
	sideLeft | sideRight | sideDown:          1,
	sideLeft | sideDown:                      2,
	sideLeft | sideUp | sideDown:             3,
	sideLeft | sideUp:                        4,
	sideLeft | sideUp | sideRight:            5,
	sideRight | sideUp:                       6,
	sideRight | sideUp | sideDown:            7,
	sideLeft | sideRight | sideUp | sideDown: 8,
}

// neighbors returns the directions in which a tile of the same type sits.
func (m *Tilemap) neighbors(t Tile) side {
	var s side
	for _, so := range sideOffsets {
		if n, ok := m.tiles[t.Pos.Add(so.off)]; ok && n.Type == t.Type {
			s |= so.s
		}
	}
	return s
}

// Autotile rewrites the variant of every grass and stone tile from its
// same-type neighbors. Neighbor sets missing from the table keep their
// variant. If any chosen variant has no image the map is left untouched and
// an error wrapping asset.ErrInvalidAssetVariant is returned.
func (m *Tilemap) Autotile() error {
	updates := make(map[core.Point]int)
	for p, t := range m.tiles {
		if !t.Type.Autotiled() {
			continue
		}
		variant, ok := autotileMap[m.neighbors(t)]
		if !ok {
			continue
		}
		if m.assets != nil {
			if err := m.assets.CheckVariant(string(t.Type), variant); err != nil {
				return err
			}
		}
		updates[p] = variant
	}

	for p, v := range updates {
		t := m.tiles[p]
		t.Variant = v
		m.tiles[p] = t
	}
	return nil
}

package tilemap

import (
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultTileSize is the pixel size of a grid cell.
const DefaultTileSize = 16

// neighborOffsets covers the 3×3 block around a cell.
var neighborOffsets = [...]core.Point{
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0},
	{X: 0, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Tilemap is a sparse tile store.
// Grid tiles are unique per cell; the last Set wins.
type Tilemap struct {
	TileSize int

	tiles   map[core.Point]Tile
	offgrid []OffgridTile
	assets  *asset.Table
}

// New creates an empty tilemap. assets may be nil, in which case variants are
// not validated and Render draws nothing.
func New(tileSize int, assets *asset.Table) *Tilemap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Tilemap{
		TileSize: tileSize,
		tiles:    make(map[core.Point]Tile),
		assets:   assets,
	}
}

// NewStarter creates the editor's starting map: a grass floor row and a stone
// column that crosses it.
func NewStarter(tileSize int, assets *asset.Table) *Tilemap {
	m := New(tileSize, assets)
	for i := 0; i < 10; i++ {
		m.Set(Tile{Type: Grass, Variant: 1, Pos: core.Pt(3+i, 10)})
		m.Set(Tile{Type: Stone, Variant: 1, Pos: core.Pt(10, 5+i)})
	}
	return m
}

// Assets returns the asset table used for validation and rendering.
func (m *Tilemap) Assets() *asset.Table {
	return m.assets
}

// Set places a tile at its grid position.
func (m *Tilemap) Set(t Tile) {
	m.tiles[t.Pos] = t
}

// Get returns the tile at a grid cell.
func (m *Tilemap) Get(p core.Point) (Tile, bool) {
	t, ok := m.tiles[p]
	return t, ok
}

// Remove deletes the tile at a grid cell and reports whether one existed.
func (m *Tilemap) Remove(p core.Point) bool {
	if _, ok := m.tiles[p]; !ok {
		return false
	}
	delete(m.tiles, p)
	return true
}

// Len returns the number of grid tiles.
func (m *Tilemap) Len() int {
	return len(m.tiles)
}

// Tiles returns all grid tiles ordered by row, then column.
func (m *Tilemap) Tiles() []Tile {
	out := make([]Tile, 0, len(m.tiles))
	for _, t := range m.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// AddOffgrid appends a decorative tile.
func (m *Tilemap) AddOffgrid(t OffgridTile) {
	m.offgrid = append(m.offgrid, t)
}

// Offgrid returns a copy of the off-grid tiles in placement order.
func (m *Tilemap) Offgrid() []OffgridTile {
	out := make([]OffgridTile, len(m.offgrid))
	copy(out, m.offgrid)
	return out
}

// RemoveOffgridAt removes every off-grid tile whose image covers the pixel p
// and returns how many were removed.
func (m *Tilemap) RemoveOffgridAt(p core.Vec) int {
	kept := m.offgrid[:0]
	removed := 0
	for _, t := range m.offgrid {
		w, h := m.imageSize(t.ID())
		r := core.NewRect(int(t.Pos.X), int(t.Pos.Y), w, h)
		if r.ContainsVec(p) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.offgrid = kept
	return removed
}

func (m *Tilemap) imageSize(id TileID) (int, int) {
	if m.assets != nil {
		if img, err := m.assets.Image(string(id.Type), id.Variant); err == nil {
			return img.W, img.H
		}
	}
	return m.TileSize, m.TileSize
}

// Cell returns the grid cell containing a pixel position.
func (m *Tilemap) Cell(pos core.Vec) core.Point {
	return core.Pt(core.FloorDiv(pos.X, m.TileSize), core.FloorDiv(pos.Y, m.TileSize))
}

// TilesAround returns the tiles in the 3×3 block around the cell containing pos.
func (m *Tilemap) TilesAround(pos core.Vec) []Tile {
	cell := m.Cell(pos)
	var out []Tile
	for _, off := range neighborOffsets {
		if t, ok := m.tiles[cell.Add(off)]; ok {
			out = append(out, t)
		}
	}
	return out
}

// PhysicsRectsAround returns pixel rects of the solid tiles near pos.
func (m *Tilemap) PhysicsRectsAround(pos core.Vec) []core.Rect {
	var rects []core.Rect
	for _, t := range m.TilesAround(pos) {
		if t.Type.Physics() {
			rects = append(rects, m.TileRect(t.Pos))
		}
	}
	return rects
}

// TileRect returns the pixel rect of a grid cell.
func (m *Tilemap) TileRect(p core.Point) core.Rect {
	return core.NewRect(p.X*m.TileSize, p.Y*m.TileSize, m.TileSize, m.TileSize)
}

// SolidCheck returns the solid tile covering pixel pos, if any.
func (m *Tilemap) SolidCheck(pos core.Vec) (Tile, bool) {
	t, ok := m.tiles[m.Cell(pos)]
	if !ok || !t.Type.Physics() {
		return Tile{}, false
	}
	return t, true
}

// Extract returns every tile matching one of ids, off-grid tiles first.
// Grid tiles come back with pixel positions. Matches are removed from the map
// unless keep is set.
func (m *Tilemap) Extract(ids []TileID, keep bool) []OffgridTile {
	want := make(map[TileID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var matches []OffgridTile

	kept := make([]OffgridTile, 0, len(m.offgrid))
	for _, t := range m.offgrid {
		if want[t.ID()] {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		kept = append(kept, t)
	}
	m.offgrid = kept

	for _, t := range m.Tiles() {
		if !want[t.ID()] {
			continue
		}
		matches = append(matches, OffgridTile{
			Type:    t.Type,
			Variant: t.Variant,
			Pos:     core.V(float64(t.Pos.X*m.TileSize), float64(t.Pos.Y*m.TileSize)),
		})
		if !keep {
			delete(m.tiles, t.Pos)
		}
	}

	return matches
}

// Bounds returns the smallest grid rect containing every grid tile.
// ok is false for an empty map.
func (m *Tilemap) Bounds() (r core.Rect, ok bool) {
	first := true
	var minX, minY, maxX, maxY int
	for p := range m.tiles {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX, maxX = core.Min(minX, p.X), core.Max(maxX, p.X)
		minY, maxY = core.Min(minY, p.Y), core.Max(maxY, p.Y)
	}
	if first {
		return core.Rect{}, false
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1), true
}

// Counts returns the number of grid and off-grid tiles per type.
func (m *Tilemap) Counts() map[TileType]int {
	counts := make(map[TileType]int)
	for _, t := range m.tiles {
		counts[t.Type]++
	}
	for _, t := range m.offgrid {
		counts[t.Type]++
	}
	return counts
}

// Validate checks every tile variant against the asset table.
func (m *Tilemap) Validate() error {
	if m.assets == nil {
		return nil
	}
	for _, t := range m.Tiles() {
		if err := m.assets.CheckVariant(string(t.Type), t.Variant); err != nil {
			return err
		}
	}
	for _, t := range m.offgrid {
		if err := m.assets.CheckVariant(string(t.Type), t.Variant); err != nil {
			return err
		}
	}
	return nil
}

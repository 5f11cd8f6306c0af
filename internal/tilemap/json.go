package tilemap

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// jsonTile is the on-disk form of a grid tile.
type jsonTile struct {
	Type    string `json:"type"`
	Variant int    `json:"variant"`
	Pos     [2]int `json:"pos"`
}

// jsonOffgrid is the on-disk form of an off-grid tile.
type jsonOffgrid struct {
	Type    string     `json:"type"`
	Variant int        `json:"variant"`
	Pos     [2]float64 `json:"pos"`
}

// jsonLevel is the level document.
type jsonLevel struct {
	Tilemap  map[string]jsonTile `json:"tilemap"`
	TileSize int                 `json:"tile_size"`
	Offgrid  []jsonOffgrid       `json:"offgrid"`
}

// cellKey formats a grid cell as the "x;y" key used in level files.
func cellKey(p core.Point) string {
	return strconv.Itoa(p.X) + ";" + strconv.Itoa(p.Y)
}

// parseCellKey is the inverse of cellKey.
func parseCellKey(key string) (core.Point, error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return core.Point{}, fmt.Errorf("tilemap: malformed cell key %q", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return core.Point{}, fmt.Errorf("tilemap: malformed cell key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return core.Point{}, fmt.Errorf("tilemap: malformed cell key %q: %w", key, err)
	}
	return core.Pt(x, y), nil
}

// MarshalJSON encodes the map in the level file format.
func (m *Tilemap) MarshalJSON() ([]byte, error) {
	doc := jsonLevel{
		Tilemap:  make(map[string]jsonTile, len(m.tiles)),
		TileSize: m.TileSize,
		Offgrid:  make([]jsonOffgrid, 0, len(m.offgrid)),
	}
	for p, t := range m.tiles {
		doc.Tilemap[cellKey(p)] = jsonTile{
			Type:    string(t.Type),
			Variant: t.Variant,
			Pos:     [2]int{p.X, p.Y},
		}
	}
	for _, t := range m.offgrid {
		doc.Offgrid = append(doc.Offgrid, jsonOffgrid{
			Type:    string(t.Type),
			Variant: t.Variant,
			Pos:     [2]float64{t.Pos.X, t.Pos.Y},
		})
	}
	return json.Marshal(doc)
}

// UnmarshalJSON replaces the map contents from a level document. Tile types
// are checked against the closed set; variants are checked by Validate.
func (m *Tilemap) UnmarshalJSON(data []byte) error {
	var doc jsonLevel
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("tilemap: decoding level: %w", err)
	}

	tiles := make(map[core.Point]Tile, len(doc.Tilemap))
	for key, jt := range doc.Tilemap {
		p, err := parseCellKey(key)
		if err != nil {
			return err
		}
		if p != core.Pt(jt.Pos[0], jt.Pos[1]) {
			return fmt.Errorf("tilemap: cell key %q does not match pos %v", key, jt.Pos)
		}
		typ, err := ParseTileType(jt.Type)
		if err != nil {
			return fmt.Errorf("tilemap: tile %q: %w", key, err)
		}
		tiles[p] = Tile{Type: typ, Variant: jt.Variant, Pos: p}
	}

	offgrid := make([]OffgridTile, 0, len(doc.Offgrid))
	for i, jo := range doc.Offgrid {
		typ, err := ParseTileType(jo.Type)
		if err != nil {
			return fmt.Errorf("tilemap: offgrid tile %d: %w", i, err)
		}
		offgrid = append(offgrid, OffgridTile{
			Type:    typ,
			Variant: jo.Variant,
			Pos:     core.V(jo.Pos[0], jo.Pos[1]),
		})
	}

	if doc.TileSize > 0 {
		m.TileSize = doc.TileSize
	} else if m.TileSize <= 0 {
		m.TileSize = DefaultTileSize
	}
	m.tiles = tiles
	m.offgrid = offgrid
	return nil
}

// Parse decodes a level document and validates it against the asset table.
func (m *Tilemap) Parse(data []byte) error {
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("tilemap: %w", err)
	}
	return nil
}

// Save writes the map to path as a level document.
func (m *Tilemap) Save(path string) error {
	data, err := m.MarshalJSON()
	if err != nil {
		return fmt.Errorf("tilemap: encoding level: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("tilemap: writing %s: %w", path, err)
	}
	return nil
}

// Load replaces the map contents with the level stored at path.
// A missing file yields an error wrapping fs.ErrNotExist.
func (m *Tilemap) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tilemap: reading %s: %w", path, err)
	}
	if err := m.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

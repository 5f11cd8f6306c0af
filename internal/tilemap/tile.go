// Package tilemap implements the sparse tile store: grid tiles keyed by
// integer cell, decorative off-grid tiles, neighborhood queries for physics,
// autotiling and the JSON level format.
package tilemap

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrUnknownTileType is returned when a level names a type outside the
// closed set below.
var ErrUnknownTileType = errors.New("tilemap: unknown tile type")

// TileType is the closed set of tile kinds.
type TileType string

const (
	Grass      TileType = "grass"
	Stone      TileType = "stone"
	Decor      TileType = "decor"
	LargeDecor TileType = "large_decor"
	Spawners   TileType = "spawners"
)

// AllTypes lists every valid tile type in editor order.
var AllTypes = []TileType{Decor, Grass, LargeDecor, Stone, Spawners}

// ParseTileType validates a type tag.
func ParseTileType(s string) (TileType, error) {
	t := TileType(s)
	switch t {
	case Grass, Stone, Decor, LargeDecor, Spawners:
		return t, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTileType, s)
}

// Physics reports whether tiles of this type block movement.
func (t TileType) Physics() bool {
	return t == Grass || t == Stone
}

// Autotiled reports whether autotile rewrites variants of this type.
func (t TileType) Autotiled() bool {
	return t == Grass || t == Stone
}

// Tile is a grid-aligned tile. Pos is in grid cells.
type Tile struct {
	Type    TileType
	Variant int
	Pos     core.Point
}

// OffgridTile is a decorative tile at a pixel position with no collision.
// Extract also returns grid tiles in this form, converted to pixels.
type OffgridTile struct {
	Type    TileType
	Variant int
	Pos     core.Vec
}

// TileID identifies a tile image by type and variant.
type TileID struct {
	Type    TileType
	Variant int
}

// ID returns the type/variant pair of the tile.
func (t Tile) ID() TileID {
	return TileID{Type: t.Type, Variant: t.Variant}
}

// ID returns the type/variant pair of the tile.
func (t OffgridTile) ID() TileID {
	return TileID{Type: t.Type, Variant: t.Variant}
}

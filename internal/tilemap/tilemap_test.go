package tilemap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func testAssets(t *testing.T) *asset.Table {
	t.Helper()
	table, err := asset.Default()
	if err != nil {
		t.Fatalf("asset.Default() error = %v", err)
	}
	return table
}

func TestParseTileType(t *testing.T) {
	for _, typ := range AllTypes {
		got, err := ParseTileType(string(typ))
		if err != nil || got != typ {
			t.Errorf("ParseTileType(%q) = %q, %v", typ, got, err)
		}
	}

	if _, err := ParseTileType("lava"); !errors.Is(err, ErrUnknownTileType) {
		t.Errorf("ParseTileType(lava) error = %v, expected ErrUnknownTileType", err)
	}
}

func TestSetGetLastWriteWins(t *testing.T) {
	m := New(16, nil)
	m.Set(Tile{Type: Grass, Variant: 0, Pos: core.Pt(1, 1)})
	m.Set(Tile{Type: Stone, Variant: 3, Pos: core.Pt(1, 1)})

	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", m.Len())
	}
	got, ok := m.Get(core.Pt(1, 1))
	if !ok || got.Type != Stone || got.Variant != 3 {
		t.Errorf("Get() = %+v, %v, expected stone/3", got, ok)
	}

	if !m.Remove(core.Pt(1, 1)) {
		t.Error("Remove() = false, expected true")
	}
	if m.Remove(core.Pt(1, 1)) {
		t.Error("second Remove() = true, expected false")
	}
}

func TestNewStarter(t *testing.T) {
	m := NewStarter(16, nil)
	if m.Len() != 19 {
		t.Errorf("Len() = %d, expected 19", m.Len())
	}
	// Grass is written after stone at the crossing cell.
	if tile, _ := m.Get(core.Pt(10, 10)); tile.Type != Grass {
		t.Errorf("crossing tile = %q, expected grass", tile.Type)
	}
	if tile, _ := m.Get(core.Pt(10, 14)); tile.Type != Stone {
		t.Errorf("column tile = %q, expected stone", tile.Type)
	}
}

func TestTilesAround(t *testing.T) {
	m := New(16, nil)
	m.Set(Tile{Type: Grass, Pos: core.Pt(0, 0)})
	m.Set(Tile{Type: Grass, Pos: core.Pt(1, 1)})
	m.Set(Tile{Type: Stone, Pos: core.Pt(-1, -1)})
	m.Set(Tile{Type: Grass, Pos: core.Pt(2, 0)})  // outside the block
	m.Set(Tile{Type: Decor, Pos: core.Pt(0, 1)})

	got := m.TilesAround(core.V(8, 8))
	if len(got) != 4 {
		t.Fatalf("TilesAround() returned %d tiles, expected 4: %+v", len(got), got)
	}

	rects := m.PhysicsRectsAround(core.V(8, 8))
	if len(rects) != 3 {
		t.Errorf("PhysicsRectsAround() returned %d rects, expected 3", len(rects))
	}
	for _, r := range rects {
		if r.W != 16 || r.H != 16 || r.X%16 != 0 || r.Y%16 != 0 {
			t.Errorf("rect %+v is not a tile-aligned 16px square", r)
		}
	}
}

func TestTilesAroundNegativeCoordinates(t *testing.T) {
	m := New(16, nil)
	m.Set(Tile{Type: Stone, Pos: core.Pt(-2, 0)})

	// x = -1 lies in cell -1, whose block reaches cell -2.
	if got := m.TilesAround(core.V(-1, 4)); len(got) != 1 {
		t.Errorf("TilesAround(-1, 4) = %d tiles, expected 1", len(got))
	}
	// x = 1 lies in cell 0, whose block stops at cell -1.
	if got := m.TilesAround(core.V(1, 4)); len(got) != 0 {
		t.Errorf("TilesAround(1, 4) = %d tiles, expected 0", len(got))
	}
}

func TestSolidCheck(t *testing.T) {
	m := New(16, nil)
	m.Set(Tile{Type: Grass, Pos: core.Pt(2, 3)})
	m.Set(Tile{Type: Decor, Pos: core.Pt(4, 3)})

	tests := []struct {
		name string
		pos  core.Vec
		want bool
	}{
		{"inside solid", core.V(40, 50), true},
		{"solid edge", core.V(32, 48), true},
		{"just outside", core.V(31.9, 48), false},
		{"decor is not solid", core.V(70, 50), false},
		{"empty", core.V(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, got := m.SolidCheck(tc.pos)
			if got != tc.want {
				t.Errorf("SolidCheck(%v) = %v, expected %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	m := New(16, nil)
	m.Set(Tile{Type: Spawners, Variant: 0, Pos: core.Pt(2, 5)})
	m.Set(Tile{Type: Spawners, Variant: 1, Pos: core.Pt(7, 5)})
	m.Set(Tile{Type: Grass, Variant: 1, Pos: core.Pt(2, 6)})
	m.AddOffgrid(OffgridTile{Type: Spawners, Variant: 1, Pos: core.V(100.5, 20)})
	m.AddOffgrid(OffgridTile{Type: Decor, Variant: 0, Pos: core.V(3, 4)})

	ids := []TileID{{Spawners, 0}, {Spawners, 1}}
	got := m.Extract(ids, false)

	want := []OffgridTile{
		{Type: Spawners, Variant: 1, Pos: core.V(100.5, 20)},
		{Type: Spawners, Variant: 0, Pos: core.V(32, 80)},
		{Type: Spawners, Variant: 1, Pos: core.V(112, 80)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %+v, expected %+v", got, want)
	}
	if m.Len() != 1 {
		t.Errorf("Len() after Extract = %d, expected 1", m.Len())
	}
	if len(m.Offgrid()) != 1 {
		t.Errorf("Offgrid() after Extract = %d tiles, expected 1", len(m.Offgrid()))
	}
}

func TestExtractKeep(t *testing.T) {
	m := New(16, nil)
	m.Set(Tile{Type: LargeDecor, Variant: 2, Pos: core.Pt(1, 1)})
	m.AddOffgrid(OffgridTile{Type: LargeDecor, Variant: 2, Pos: core.V(50, 60)})

	got := m.Extract([]TileID{{LargeDecor, 2}}, true)
	if len(got) != 2 {
		t.Errorf("Extract(keep) returned %d tiles, expected 2", len(got))
	}
	if m.Len() != 1 || len(m.Offgrid()) != 1 {
		t.Error("Extract(keep) should not remove tiles")
	}
}

func TestRemoveOffgridAt(t *testing.T) {
	m := New(16, testAssets(t))
	m.AddOffgrid(OffgridTile{Type: Decor, Variant: 0, Pos: core.V(10, 10)})
	m.AddOffgrid(OffgridTile{Type: Decor, Variant: 1, Pos: core.V(100, 10)})

	if n := m.RemoveOffgridAt(core.V(5, 5)); n != 0 {
		t.Errorf("RemoveOffgridAt(miss) = %d, expected 0", n)
	}
	if n := m.RemoveOffgridAt(core.V(20, 20)); n != 1 {
		t.Errorf("RemoveOffgridAt(hit) = %d, expected 1", n)
	}
	if off := m.Offgrid(); len(off) != 1 || off[0].Variant != 1 {
		t.Errorf("Offgrid() = %+v, expected only variant 1", off)
	}
}

func TestBoundsAndCounts(t *testing.T) {
	m := New(16, nil)
	if _, ok := m.Bounds(); ok {
		t.Error("Bounds() on empty map should report !ok")
	}

	m.Set(Tile{Type: Grass, Pos: core.Pt(-2, 3)})
	m.Set(Tile{Type: Stone, Pos: core.Pt(4, 9)})
	m.AddOffgrid(OffgridTile{Type: Decor, Pos: core.V(0, 0)})

	b, ok := m.Bounds()
	if !ok || b != core.NewRect(-2, 3, 7, 7) {
		t.Errorf("Bounds() = %+v, %v, expected (-2,3,7,7)", b, ok)
	}

	counts := m.Counts()
	if counts[Grass] != 1 || counts[Stone] != 1 || counts[Decor] != 1 {
		t.Errorf("Counts() = %v", counts)
	}
}

func TestValidate(t *testing.T) {
	m := New(16, testAssets(t))
	m.Set(Tile{Type: Grass, Variant: 8, Pos: core.Pt(0, 0)})
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() error = %v, expected nil", err)
	}

	m.AddOffgrid(OffgridTile{Type: Decor, Variant: 42})
	if err := m.Validate(); !errors.Is(err, asset.ErrInvalidAssetVariant) {
		t.Errorf("Validate() error = %v, expected ErrInvalidAssetVariant", err)
	}
}

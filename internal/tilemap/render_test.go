package tilemap

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/core/coretest"
)

func TestRenderViewportCull(t *testing.T) {
	m := New(16, testAssets(t))
	// A long floor, far wider than the viewport.
	for x := -50; x < 200; x++ {
		m.Set(Tile{Type: Stone, Variant: 1, Pos: core.Pt(x, 5)})
	}

	surf := coretest.NewRecorder(64, 160)
	m.Render(surf, core.Pt(40, 0))

	// Columns 2..6 are visible (40//16 .. (40+64)//16).
	if len(surf.Blits) != 5 {
		t.Fatalf("Render() drew %d tiles, expected 5", len(surf.Blits))
	}
	for _, b := range surf.Blits {
		if b.X < -16 || b.X >= surf.W {
			t.Errorf("blit at x=%d is outside the viewport", b.X)
		}
		if b.Y != 5*16 {
			t.Errorf("blit at y=%d, expected %d", b.Y, 5*16)
		}
	}
	if !surf.At(2*16-40, 80) {
		t.Error("expected first visible column at screen x = -8")
	}
}

func TestRenderNegativeOffset(t *testing.T) {
	m := New(16, testAssets(t))
	m.Set(Tile{Type: Grass, Variant: 1, Pos: core.Pt(-1, 0)})
	m.Set(Tile{Type: Grass, Variant: 1, Pos: core.Pt(-3, 0)})

	surf := coretest.NewRecorder(32, 32)
	m.Render(surf, core.Pt(-20, 0))

	if len(surf.Blits) != 1 || !surf.At(-16+20, 0) {
		t.Errorf("Render() blits = %+v, expected only cell -1 at x=4", surf.Blits)
	}
}

func TestRenderOffgridFirst(t *testing.T) {
	m := New(16, testAssets(t))
	m.Set(Tile{Type: Grass, Variant: 1, Pos: core.Pt(0, 0)})
	m.AddOffgrid(OffgridTile{Type: Decor, Variant: 2, Pos: core.V(5.7, 3)})
	// Off-grid tiles are drawn even when far away; the surface clips them.
	m.AddOffgrid(OffgridTile{Type: Decor, Variant: 0, Pos: core.V(5000, 3)})

	surf := coretest.NewRecorder(64, 64)
	m.Render(surf, core.Pt(0, 0))

	if len(surf.Blits) != 3 {
		t.Fatalf("Render() drew %d images, expected 3", len(surf.Blits))
	}
	if surf.Blits[0].X != 5 || surf.Blits[0].Y != 3 {
		t.Errorf("first blit = (%d, %d), expected off-grid tile at (5, 3)", surf.Blits[0].X, surf.Blits[0].Y)
	}
	if surf.Blits[2].X != 0 || surf.Blits[2].Y != 0 {
		t.Errorf("last blit = (%d, %d), expected grid tile at (0, 0)", surf.Blits[2].X, surf.Blits[2].Y)
	}
}

func TestRenderWithoutAssets(t *testing.T) {
	m := NewStarter(16, nil)
	surf := coretest.NewRecorder(320, 240)
	m.Render(surf, core.Pt(0, 0))
	if len(surf.Blits) != 0 {
		t.Errorf("Render() without assets drew %d images, expected 0", len(surf.Blits))
	}
}

package physics

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/core/coretest"
	"github.com/vovakirdan/tui-platformer/internal/tilemap"
)

// rects is a fixed RectSource.
type rects []core.Rect

func (r rects) PhysicsRectsAround(core.Vec) []core.Rect { return r }

func TestLandOnTile(t *testing.T) {
	m := tilemap.New(12, nil)
	m.Set(tilemap.Tile{Type: tilemap.Stone, Pos: core.Pt(0, 9)}) // top edge at y=108

	b := NewBody("player", core.V(0, 100), 8, 8, nil)
	b.Vel.Y = 5
	b.Update(m, core.Vec{})

	if got := b.Rect().Bottom(); got != 108 {
		t.Errorf("Bottom() = %d, expected 108", got)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, expected 0", b.Vel.Y)
	}
	if !b.Collisions.Down {
		t.Error("Collisions.Down = false, expected true")
	}
	if b.Collisions.Up || b.Collisions.Left || b.Collisions.Right {
		t.Errorf("unexpected collisions %+v", b.Collisions)
	}
}

func TestTerminalVelocity(t *testing.T) {
	b := NewBody("player", core.V(0, 0), 8, 15, nil)
	empty := rects(nil)

	for i := 0; i < 200; i++ {
		b.Update(empty, core.Vec{})
		if b.Vel.Y > 5 {
			t.Fatalf("tick %d: Vel.Y = %v, exceeds 5", i, b.Vel.Y)
		}
	}
	if b.Vel.Y != 5 {
		t.Errorf("Vel.Y = %v, expected exactly 5", b.Vel.Y)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name     string
		pos      core.Vec
		move     core.Vec
		wall     core.Rect
		wantX    float64
		wantSide func(Collisions) bool
	}{
		{
			name:     "moving right",
			pos:      core.V(5, 0),
			move:     core.V(3, 0),
			wall:     core.NewRect(15, -20, 16, 64),
			wantX:    7,
			wantSide: func(c Collisions) bool { return c.Right && !c.Left },
		},
		{
			name:     "moving left",
			pos:      core.V(33, 0),
			move:     core.V(-3, 0),
			wall:     core.NewRect(15, -20, 16, 64),
			wantX:    31,
			wantSide: func(c Collisions) bool { return c.Left && !c.Right },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody("player", tc.pos, 8, 15, nil)
			b.Update(rects{tc.wall}, tc.move)

			if b.Pos.X != tc.wantX {
				t.Errorf("Pos.X = %v, expected %v", b.Pos.X, tc.wantX)
			}
			if !tc.wantSide(b.Collisions) {
				t.Errorf("Collisions = %+v", b.Collisions)
			}
		})
	}
}

func TestCeilingStopsRise(t *testing.T) {
	b := NewBody("player", core.V(0, 20), 8, 15, nil)
	b.Vel.Y = -3
	b.Update(rects{core.NewRect(0, 0, 16, 18)}, core.Vec{})

	if b.Pos.Y != 18 {
		t.Errorf("Pos.Y = %v, expected 18", b.Pos.Y)
	}
	if !b.Collisions.Up || b.Vel.Y != 0 {
		t.Errorf("Collisions.Up = %v, Vel.Y = %v, expected true, 0", b.Collisions.Up, b.Vel.Y)
	}
}

func TestCollisionsResetEachUpdate(t *testing.T) {
	b := NewBody("player", core.V(0, 100), 8, 8, nil)
	b.Vel.Y = 5
	b.Update(rects{core.NewRect(0, 108, 16, 16)}, core.Vec{})
	if !b.Collisions.Down {
		t.Fatal("expected a floor contact")
	}

	b.Update(rects(nil), core.Vec{})
	if b.Collisions != (Collisions{}) {
		t.Errorf("Collisions = %+v after update in open air, expected none", b.Collisions)
	}
}

func TestFlipFollowsInputOnly(t *testing.T) {
	b := NewBody("player", core.V(0, 0), 8, 15, nil)
	empty := rects(nil)

	b.Update(empty, core.V(-1, 0))
	if !b.Flip {
		t.Error("Flip = false after moving left")
	}

	// Velocity alone never changes facing.
	b.Vel.X = 4
	b.Update(empty, core.Vec{})
	if !b.Flip {
		t.Error("Flip changed without input")
	}

	b.Update(empty, core.V(1, 0))
	if b.Flip {
		t.Error("Flip = true after moving right")
	}
	if b.LastMovement != core.V(1, 0) {
		t.Errorf("LastMovement = %v, expected (1, 0)", b.LastMovement)
	}
}

func TestAxisSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const ts = 16

	for trial := 0; trial < 2000; trial++ {
		m := tilemap.New(ts, nil)
		for i := 0; i < 30; i++ {
			m.Set(tilemap.Tile{Type: tilemap.Grass, Pos: core.Pt(2+rng.Intn(8), 2+rng.Intn(8))})
		}
		solids := make([]core.Rect, 0, m.Len())
		for _, tile := range m.Tiles() {
			solids = append(solids, m.TileRect(tile.Pos))
		}

		w, h := 4+rng.Intn(ts-3), 4+rng.Intn(ts-3)
		b := NewBody("enemy", core.V(32+rng.Float64()*120, 32+rng.Float64()*120), w, h, nil)
		if overlapsAny(b.Rect(), solids) {
			continue
		}
		b.Vel = core.V(rng.Float64()*6-3, rng.Float64()*6-3)
		move := core.V(float64(rng.Intn(3)-1), 0)

		b.Update(m, move)

		if overlapsAny(b.Rect(), solids) {
			t.Fatalf("trial %d: body %+v overlaps a solid tile after update", trial, b.Rect())
		}
	}
}

func overlapsAny(r core.Rect, solids []core.Rect) bool {
	for _, s := range solids {
		if r.Intersects(s) {
			return true
		}
	}
	return false
}

func TestSetActionKeepsRunningAnimation(t *testing.T) {
	table, err := asset.Default()
	if err != nil {
		t.Fatalf("asset.Default() error = %v", err)
	}

	b := NewBody("player", core.V(0, 0), 8, 15, table)
	b.SetAction("run")
	b.Anim.Update()
	b.Anim.Update()

	b.SetAction("run")
	if b.Anim.Frame != 2 {
		t.Errorf("Frame = %d after repeating action, expected 2", b.Anim.Frame)
	}

	b.SetAction("jump")
	if b.Action != "jump" || b.Anim.Frame != 0 {
		t.Errorf("SetAction(jump) = (%q, %d), expected (jump, 0)", b.Action, b.Anim.Frame)
	}
}

func TestRenderAppliesOffsets(t *testing.T) {
	b := NewBody("player", core.V(50.7, 40), 8, 15, nil)
	b.Flip = true

	surf := coretest.NewRecorder(320, 240)
	b.Render(surf, core.Pt(10, 5))

	if len(surf.Blits) != 1 {
		t.Fatalf("Render() made %d blits, expected 1", len(surf.Blits))
	}
	got := surf.Blits[0]
	if got.X != 50-10-3 || got.Y != 40-5-3 || !got.Flip {
		t.Errorf("blit = (%d, %d, %v), expected (37, 32, true)", got.X, got.Y, got.Flip)
	}
}

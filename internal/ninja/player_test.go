package ninja

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/core/coretest"
)

// recordingAudio remembers every sound played.
type recordingAudio struct {
	played []string
}

func (r *recordingAudio) Play(name string) {
	r.played = append(r.played, name)
}

func TestJumpBudget(t *testing.T) {
	p := NewPlayer(testContext(t, config.DefaultPlatformerConfig()), core.Vec{})

	if !p.Jump() {
		t.Fatal("Jump() = false, expected true")
	}
	if p.Vel.Y != -3 {
		t.Errorf("Vel.Y = %v, expected -3", p.Vel.Y)
	}
	if p.AirTime != 5 {
		t.Errorf("AirTime = %d, expected 5", p.AirTime)
	}
	if p.Jumps != 0 {
		t.Errorf("Jumps = %d, expected 0", p.Jumps)
	}

	p.Vel.Y = -1
	if p.Jump() {
		t.Error("second Jump() = true, expected false")
	}
	if p.Vel.Y != -1 {
		t.Errorf("Vel.Y = %v after failed jump, expected unchanged", p.Vel.Y)
	}
}

func TestWallJump(t *testing.T) {
	tests := []struct {
		name     string
		flip     bool
		last     float64
		ok       bool
		expected core.Vec
	}{
		{"facing right off left wall", true, -1, true, core.V(3.5, -2.5)},
		{"facing left off right wall", false, 1, true, core.V(-3.5, -2.5)},
		{"input away from wall", true, 1, false, core.Vec{}},
		{"no input", false, 0, false, core.Vec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testContext(t, config.DefaultPlatformerConfig()), core.Vec{})
			p.WallSlide = true
			p.Flip = tt.flip
			p.LastMovement = core.V(tt.last, 0)
			p.Jumps = 0

			if got := p.Jump(); got != tt.ok {
				t.Fatalf("Jump() = %v, expected %v", got, tt.ok)
			}
			if p.Vel != tt.expected {
				t.Errorf("Vel = %v, expected %v", p.Vel, tt.expected)
			}
			if tt.ok && (p.AirTime != 5 || p.Jumps != 0) {
				t.Errorf("AirTime = %d, Jumps = %d, expected 5 and 0", p.AirTime, p.Jumps)
			}
		})
	}
}

func TestReleaseJump(t *testing.T) {
	p := NewPlayer(testContext(t, config.DefaultPlatformerConfig()), core.Vec{})

	p.Vel.Y = -3
	p.ReleaseJump()
	if p.Vel.Y != -1 {
		t.Errorf("Vel.Y = %v, expected -1", p.Vel.Y)
	}

	p.Vel.Y = -0.5
	p.ReleaseJump()
	if p.Vel.Y != -0.5 {
		t.Errorf("Vel.Y = %v, expected -0.5 (already slower than the cap)", p.Vel.Y)
	}

	cfg := config.DefaultPlatformerConfig()
	cfg.Player.JumpReleaseCap = 0
	p = NewPlayer(testContext(t, cfg), core.Vec{})
	p.Vel.Y = -3
	p.ReleaseJump()
	if p.Vel.Y != -3 {
		t.Errorf("Vel.Y = %v, expected -3 with variable height disabled", p.Vel.Y)
	}
}

func TestDashCannotRetrigger(t *testing.T) {
	ctx := testContext(t, config.DefaultPlatformerConfig())
	sfx := &recordingAudio{}
	ctx.Audio = sfx
	p := NewPlayer(ctx, core.Vec{})

	if !p.Dash() || p.Dashing != 60 {
		t.Fatalf("Dash() facing right: Dashing = %d, expected 60", p.Dashing)
	}
	p.Dashing = 20
	if p.Dash() {
		t.Error("Dash() while dashing = true, expected false")
	}
	if p.Dashing != 20 {
		t.Errorf("Dashing = %d, expected 20", p.Dashing)
	}
	if len(sfx.played) != 1 || sfx.played[0] != "dash" {
		t.Errorf("played = %v, expected one dash", sfx.played)
	}

	p.Dashing = 0
	p.Flip = true
	p.Dash()
	if p.Dashing != -60 {
		t.Errorf("Dash() facing left: Dashing = %d, expected -60", p.Dashing)
	}
}

func TestDashBlink(t *testing.T) {
	p := NewPlayer(testContext(t, config.DefaultPlatformerConfig()), core.Vec{})
	rec := coretest.NewRecorder(320, 240)

	tests := []struct {
		dashing int
		visible bool
	}{
		{60, false},
		{-60, false},
		{51, false},
		{-51, false},
		{50, true},
		{-50, true},
		{10, true},
		{0, true},
	}

	for _, tt := range tests {
		rec.Reset()
		p.Dashing = tt.dashing
		p.Render(rec, core.Point{})
		if got := len(rec.Blits) > 0; got != tt.visible {
			t.Errorf("Dashing = %d: drawn = %v, expected %v", tt.dashing, got, tt.visible)
		}
	}
}

func TestDashMovesAndBursts(t *testing.T) {
	s := testScene(t, arena)
	p := s.Player
	start := p.Pos.X

	p.Dash()
	in := core.NewInputFrame()
	s.Update(in)

	if math.Abs(p.Vel.X-7.9) > 1e-9 {
		t.Errorf("Vel.X = %v, expected 7.9 (dash speed minus friction)", p.Vel.X)
	}
	if len(s.Particles) < 20 {
		t.Errorf("Particles = %d, expected the 20 particle start burst", len(s.Particles))
	}

	for i := 0; i < 9; i++ {
		s.Update(in)
	}
	if p.Dashing != 50 {
		t.Errorf("Dashing = %d, expected 50", p.Dashing)
	}
	if p.Pos.X-start < 50 {
		t.Errorf("moved %v px, expected a dash of more than 50", p.Pos.X-start)
	}
	if p.Vel.X > 1 {
		t.Errorf("Vel.X = %v, expected the dash to brake at the end of the fast phase", p.Vel.X)
	}
}

func TestFrictionDoesNotOvershoot(t *testing.T) {
	p := NewPlayer(testContext(t, config.DefaultPlatformerConfig()), core.Vec{})

	p.Vel.X = 0.05
	p.applyFriction()
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected 0", p.Vel.X)
	}

	p.Vel.X = -0.25
	p.applyFriction()
	if math.Abs(p.Vel.X+0.15) > 1e-9 {
		t.Errorf("Vel.X = %v, expected -0.15", p.Vel.X)
	}
}

func TestActionSelection(t *testing.T) {
	s := testScene(t, arena)
	p := s.Player

	landed := false
	for i := 0; i < 30; i++ {
		s.Update(core.NewInputFrame())
		landed = landed || p.Collisions.Down
		if p.AirTime <= 4 && p.Action != ActionIdle {
			t.Fatalf("tick %d: Action = %q standing still, expected idle", i, p.Action)
		}
	}
	if !landed {
		t.Fatal("player never touched the floor")
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		s.Update(right)
		if p.AirTime <= 4 && p.Action != ActionRun {
			t.Fatalf("tick %d: Action = %q with input, expected run", i, p.Action)
		}
	}

	p.Jump()
	s.Update(core.NewInputFrame())
	if p.Action != ActionJump {
		t.Errorf("Action = %q after jumping, expected jump", p.Action)
	}
}

func TestWallSlide(t *testing.T) {
	s := testScene(t, arena)
	p := s.Player

	// A wall one tile right of the player, high above the floor.
	wallX := 4
	for y := 0; y < 10; y++ {
		s.Tilemap.Set(tileAt(wallX, y))
	}
	p.Pos = core.V(float64(wallX*16-8), 40)
	p.AirTime = 10
	p.Vel.Y = 3

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	s.Update(right)

	if !p.WallSlide {
		t.Fatal("WallSlide = false, expected true")
	}
	if p.Action != ActionWallSlide {
		t.Errorf("Action = %q, expected wall_slide", p.Action)
	}
	if p.Vel.Y > 0.5 {
		t.Errorf("Vel.Y = %v, expected capped at 0.5", p.Vel.Y)
	}
	if p.AirTime != 5 {
		t.Errorf("AirTime = %d, expected 5", p.AirTime)
	}
	if p.Flip {
		t.Error("Flip = true against a right wall, expected false")
	}
}

func TestShootCooldown(t *testing.T) {
	s := testScene(t, arena)
	p := s.Player

	if !p.Shoot(s) {
		t.Fatal("Shoot() = false, expected true")
	}
	if len(s.Projectiles) != 1 || s.Projectiles[0].Owner != OwnerPlayer {
		t.Fatalf("Projectiles = %d, expected one shuriken", len(s.Projectiles))
	}
	if s.Projectiles[0].Direction <= 0 {
		t.Errorf("Direction = %v, expected rightward", s.Projectiles[0].Direction)
	}
	if p.Shoot(s) {
		t.Error("Shoot() during cooldown = true, expected false")
	}

	for i := 0; i < 30; i++ {
		s.Update(core.NewInputFrame())
	}
	if !p.Shoot(s) {
		t.Error("Shoot() after cooldown = false, expected true")
	}
}

func TestInvulnerableBlink(t *testing.T) {
	p := NewPlayer(testContext(t, config.DefaultPlatformerConfig()), core.Vec{})
	rec := coretest.NewRecorder(320, 240)

	drawn := 0
	for f := 1; f <= 8; f++ {
		rec.Reset()
		p.IFrames = f
		p.Render(rec, core.Point{})
		drawn += len(rec.Blits)
	}
	if drawn != 4 {
		t.Errorf("drawn in %d of 8 frames, expected 4", drawn)
	}
}

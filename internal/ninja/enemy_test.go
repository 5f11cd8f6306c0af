package ninja

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/core/coretest"
	"github.com/vovakirdan/tui-platformer/internal/tilemap"
)

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		health, damage int
		alive          bool
	}{
		{10, 10, false},
		{10, 9, true},
		{1, 1, false},
		{3, 1, true},
		{1, 5, false},
	}

	for _, tt := range tests {
		c := NewCombat(tt.health, 0, 30)
		if got := c.TakeDamage(tt.damage); got != tt.alive {
			t.Errorf("TakeDamage(%d) on %d = %v, expected %v", tt.damage, tt.health, got, tt.alive)
		}
		if c.Health != tt.health-tt.damage {
			t.Errorf("Health = %d, expected %d", c.Health, tt.health-tt.damage)
		}
	}
}

func TestCombatInvulnerability(t *testing.T) {
	c := NewCombat(10, 1, 3)
	c.Stagger()
	if c.Vulnerable() {
		t.Fatal("Vulnerable() = true right after a hit")
	}
	for i := 0; i < 3; i++ {
		c.Tick()
	}
	if !c.Vulnerable() {
		t.Error("Vulnerable() = false after the window")
	}
	c.Tick()
	if c.IFrames != 0 {
		t.Errorf("IFrames = %d, expected to stop at 0", c.IFrames)
	}
}

// overlap moves the single enemy onto the player.
func overlap(s *Scene) *Enemy {
	e := s.Enemies[0]
	e.Pos = s.Player.Pos
	return e
}

func TestDashKillsEnemy(t *testing.T) {
	s := testScene(t, arena)
	overlap(s)
	s.Player.Dashing = 55

	s.Update(core.NewInputFrame())

	if len(s.Enemies) != 0 {
		t.Fatalf("Enemies = %d, expected the killed enemy to be removed", len(s.Enemies))
	}
	if s.Kills != 1 {
		t.Errorf("Kills = %d, expected 1", s.Kills)
	}
	if !hasEvent(s.Events(), core.EventEnemyKilled) {
		t.Error("expected an enemy_killed event")
	}
	if len(s.Sparks) < 32 {
		t.Errorf("Sparks = %d, expected the burst plus two big sparks", len(s.Sparks))
	}
	if s.Shake != 16 {
		t.Errorf("Shake = %v, expected 16", s.Shake)
	}
}

func TestDashHitRespectsIFrames(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Enemy.Health = 25
	s := testSceneWith(t, cfg, arena)
	e := overlap(s)
	s.Player.Dashing = 58

	in := core.NewInputFrame()
	s.Update(in)
	if e.Health != 15 {
		t.Fatalf("Health = %d after first hit, expected 15", e.Health)
	}
	if e.IFrames != 30 {
		t.Errorf("IFrames = %d, expected 30", e.IFrames)
	}

	e.Pos = s.Player.Pos
	s.Update(in)
	if e.Health != 15 {
		t.Errorf("Health = %d, expected no damage while invulnerable", e.Health)
	}
	if len(s.Enemies) != 1 {
		t.Errorf("Enemies = %d, expected the enemy to survive", len(s.Enemies))
	}
}

func TestSlowPlayerDoesNotHurt(t *testing.T) {
	s := testScene(t, arena)
	e := overlap(s)
	s.Player.Dashing = 20

	s.Update(core.NewInputFrame())
	if e.Health != e.MaxHealth {
		t.Errorf("Health = %d, expected %d outside the dash window", e.Health, e.MaxHealth)
	}
}

func TestEnemyTurnsAtLedge(t *testing.T) {
	s := testScene(t, func(m *tilemap.Tilemap) {
		floor(m, -5, 40, 10)
		spawn(m, 0, 2, 9)
		floor(m, 20, 21, 6)
		spawn(m, 1, 21, 5)
	})
	e := s.Enemies[0]
	e.Pos = core.V(21*16+8, 5*16+1)
	e.Walking = 10

	s.Update(core.NewInputFrame())
	if !e.Flip {
		t.Error("Flip = false at the right ledge, expected the enemy to turn")
	}
}

func TestEnemyWalksOnFloor(t *testing.T) {
	s := testScene(t, arena)
	e := s.Enemies[0]
	for i := 0; i < 10; i++ {
		s.Update(core.NewInputFrame())
	}
	e.Walking = 20
	x := e.Pos.X

	s.Update(core.NewInputFrame())
	if e.Pos.X == x {
		t.Error("walking enemy did not move")
	}
	if e.Action != ActionRun {
		t.Errorf("Action = %q, expected run", e.Action)
	}
}

func TestEnemyShootsWhenFacingPlayer(t *testing.T) {
	tests := []struct {
		name   string
		flip   bool
		shoots bool
	}{
		{"facing player", true, true},
		{"back to player", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScene(t, arena)
			e := s.Enemies[0]
			e.Pos.Y = s.Player.Pos.Y
			e.Flip = tt.flip

			e.shoot(s)
			if got := len(s.Projectiles) == 1; got != tt.shoots {
				t.Fatalf("shot = %v, expected %v", got, tt.shoots)
			}
			if !tt.shoots {
				return
			}
			p := s.Projectiles[0]
			if p.Direction != -1.5 || p.Owner != OwnerEnemy {
				t.Errorf("projectile = %+v, expected leftward enemy bullet", p)
			}
			if len(s.Sparks) != 4 {
				t.Errorf("Sparks = %d, expected 4 muzzle sparks", len(s.Sparks))
			}
		})
	}
}

func TestEnemyHoldsFireOffRow(t *testing.T) {
	s := testScene(t, arena)
	e := s.Enemies[0]
	e.Flip = true
	e.Pos.Y = s.Player.Pos.Y - 40

	e.shoot(s)
	if len(s.Projectiles) != 0 {
		t.Error("enemy shot at a player on another row")
	}
}

func TestEnemyGunSide(t *testing.T) {
	ctx := testContext(t, config.DefaultPlatformerConfig())
	e := NewEnemy(ctx, core.V(100, 50), 0)
	rec := coretest.NewRecorder(320, 240)

	r := e.Rect()
	e.Render(rec, core.Point{})
	if len(rec.Blits) != 2 || !rec.At(r.CenterX()+4, r.CenterY()) {
		t.Errorf("blits = %+v, expected gun on the right", rec.Blits)
	}

	rec.Reset()
	e.Flip = true
	e.Render(rec, core.Point{})
	gun := rec.Blits[len(rec.Blits)-1]
	if gun.X != r.CenterX()-4-gun.Img.W || !gun.Flip {
		t.Errorf("gun = %+v, expected flipped on the left", gun)
	}
}

func TestDifficultyScalesEnemies(t *testing.T) {
	ctx := testContext(t, config.DefaultPlatformerConfig())
	first := NewEnemy(ctx, core.Vec{}, 0)
	last := NewEnemy(ctx, core.Vec{}, 5)

	if last.Speed() <= first.Speed() {
		t.Errorf("Speed() at level 5 = %v, expected faster than %v", last.Speed(), first.Speed())
	}
	if last.walkChance <= first.walkChance {
		t.Errorf("walkChance at level 5 = %v, expected above %v", last.walkChance, first.walkChance)
	}
}

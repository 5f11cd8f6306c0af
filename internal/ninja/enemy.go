package ninja

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// probeDepth is how far below the feet the ledge probe looks.
const probeDepth = 8

// Enemy is a gunman that patrols its platform and fires along its row when
// it stops walking.
type Enemy struct {
	*physics.Body
	Combat

	Walking int  // Ticks of walking left
	Killed  bool // Set on the killing hit; removed at the end of the phase

	ctx        *Context
	cfg        config.PlatformerEnemy
	speed      float64
	walkChance float64
	walkMax    int
	gun        core.Image
}

// NewEnemy creates an enemy whose aggression is scaled for the given level.
func NewEnemy(ctx *Context, pos core.Vec, level int) *Enemy {
	cfg := ctx.Config.Enemy
	body := physics.NewBody("enemy", pos, cfg.Width, cfg.Height, ctx.Assets)
	body.Gravity = ctx.Config.Physics.Gravity
	body.MaxFall = ctx.Config.Physics.MaxFall
	return &Enemy{
		Body:       body,
		Combat:     NewCombat(cfg.Health, cfg.Damage, cfg.IWindow),
		ctx:        ctx,
		cfg:        cfg,
		speed:      ctx.Difficulty.Speed(cfg.WalkSpeed, level, 0),
		walkChance: ctx.Difficulty.WalkChance(cfg.WalkChance, level, 0),
		walkMax:    ctx.Difficulty.WalkMax(cfg.WalkMax, cfg.WalkMin, level, 0),
		gun:        ctx.Image("gun", 0),
	}
}

// Speed returns the walking speed after difficulty scaling.
func (e *Enemy) Speed() float64 {
	return e.speed
}

// Update runs the walker AI and the dash-hit check. It returns true once the
// enemy has been killed.
func (e *Enemy) Update(s *Scene) bool {
	if e.Killed {
		return true
	}

	movement := core.Vec{}
	if e.Walking > 0 {
		r := e.Rect()
		probe := core.V(float64(r.CenterX()+7), e.Pos.Y+float64(e.H+probeDepth))
		if e.Flip {
			probe.X = float64(r.CenterX() - 7)
		}
		if _, ok := s.Tilemap.SolidCheck(probe); ok {
			if e.Collisions.Horizontal() {
				e.Flip = !e.Flip
			} else if e.Flip {
				movement.X = -e.speed
			} else {
				movement.X = e.speed
			}
		} else {
			e.Flip = !e.Flip
		}
		e.Walking = max(0, e.Walking-1)
		if e.Walking == 0 {
			e.shoot(s)
		}
	} else if e.ctx.Rand.Float64() < e.walkChance {
		e.Walking = e.cfg.WalkMin + e.ctx.Rand.Intn(max(e.walkMax-e.cfg.WalkMin, 0)+1)
	}

	e.Body.Update(s.Tilemap, movement)
	if movement.X != 0 {
		e.SetAction(ActionRun)
	} else {
		e.SetAction(ActionIdle)
	}

	e.Tick()
	pl := s.Player
	if s.Dead == 0 && pl.DashStriking() && e.Vulnerable() && e.Rect().Intersects(pl.Rect()) {
		s.hurtEnemy(e, pl.Damage)
	}
	return e.Killed
}

// shoot fires along the row when the player is level with the enemy and in
// front of it.
func (e *Enemy) shoot(s *Scene) {
	dis := s.Player.Pos.Sub(e.Pos)
	if math.Abs(dis.Y) >= e.cfg.SightHeight {
		return
	}
	r := e.Rect()
	var pos core.Vec
	var dir float64
	switch {
	case e.Flip && dis.X < 0:
		pos, dir = core.V(float64(r.CenterX()-7), float64(r.CenterY())), -e.cfg.ProjectileSpeed
	case !e.Flip && dis.X > 0:
		pos, dir = core.V(float64(r.CenterX()+7), float64(r.CenterY())), e.cfg.ProjectileSpeed
	default:
		return
	}
	e.ctx.Play(audio.SoundShoot)
	s.Projectiles = append(s.Projectiles, NewProjectile(e.ctx, OwnerEnemy, pos, dir, e.Damage))
	s.muzzle(pos, dir < 0, 4)
}

// Render draws the enemy and its gun on the facing side.
func (e *Enemy) Render(surf core.Surface, offset core.Point) {
	e.Body.Render(surf, offset)

	r := e.Rect()
	if e.Flip {
		surf.Blit(e.gun, r.CenterX()-4-e.gun.W-offset.X, r.CenterY()-offset.Y, true)
	} else {
		surf.Blit(e.gun, r.CenterX()+4-offset.X, r.CenterY()-offset.Y, false)
	}
}

package ninja

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Player actions, matching the player/<action> animation keys.
const (
	ActionIdle      = "idle"
	ActionRun       = "run"
	ActionJump      = "jump"
	ActionWallSlide = "wall_slide"
)

// Player is the ninja: a physics body that jumps, wall-jumps, dashes and
// throws shurikens.
type Player struct {
	*physics.Body
	Combat

	AirTime       int  // Ticks since the last ground contact
	Jumps         int  // Jumps left before landing again
	WallSlide     bool // Sliding down a wall this tick
	Dashing       int  // Signed dash timer; the sign is the direction
	ShootCooldown int

	ctx *Context
	cfg config.PlatformerPlayer
}

// NewPlayer creates a player with stats from the context config.
func NewPlayer(ctx *Context, pos core.Vec) *Player {
	cfg := ctx.Config.Player
	body := physics.NewBody("player", pos, cfg.Width, cfg.Height, ctx.Assets)
	body.Gravity = ctx.Config.Physics.Gravity
	body.MaxFall = ctx.Config.Physics.MaxFall
	return &Player{
		Body:   body,
		Combat: NewCombat(cfg.Health, cfg.Damage, cfg.IWindow),
		Jumps:  1,
		ctx:    ctx,
		cfg:    cfg,
	}
}

// DashStriking reports whether the dash is in its fast phase, where the
// player hits enemies and bullets pass through.
func (p *Player) DashStriking() bool {
	return core.Abs(p.Dashing) >= p.cfg.DashWindow
}

// Respawn places the player at pos with movement and timers cleared.
func (p *Player) Respawn(pos core.Vec) {
	p.Pos = pos
	p.Vel = core.Vec{}
	p.AirTime = 0
	p.Jumps = 1
	p.WallSlide = false
	p.Dashing = 0
	p.ShootCooldown = 0
	p.Heal()
}

// Update advances the player one tick. movement is the horizontal input
// intent in pixels per tick.
func (p *Player) Update(s *Scene, movement core.Vec) {
	p.Body.Update(s.Tilemap, movement)

	p.Tick()
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}

	p.AirTime++
	if p.AirTime > p.cfg.FallDeathTicks {
		if s.Dead == 0 {
			p.ctx.Log.Info("player fell", "level", s.Level)
		}
		s.Dead = 1
		s.shake(16)
	}

	if p.Collisions.Down {
		p.AirTime = 0
		p.Jumps = 1
	}

	p.WallSlide = false
	if p.Collisions.Horizontal() && p.AirTime > p.cfg.AirTimeThreshold {
		p.WallSlide = true
		p.Vel.Y = math.Min(p.Vel.Y, p.cfg.WallSlideCap)
		p.AirTime = p.cfg.AirTimeThreshold + 1
		p.Flip = !p.Collisions.Right
		p.SetAction(ActionWallSlide)
	}

	if !p.WallSlide {
		switch {
		case p.AirTime > p.cfg.AirTimeThreshold:
			p.SetAction(ActionJump)
		case movement.X != 0:
			p.SetAction(ActionRun)
		default:
			p.SetAction(ActionIdle)
		}
	}

	p.updateDash(s)
	p.applyFriction()
}

func (p *Player) updateDash(s *Scene) {
	rng := p.ctx.Rand
	center := p.Rect().CenterVec()

	if d := core.Abs(p.Dashing); d != 0 && (d == p.cfg.DashDuration || d == p.cfg.DashWindow) {
		for i := 0; i < 20; i++ {
			angle := rng.Float64() * math.Pi * 2
			speed := rng.Float64()*0.5 + 0.5
			vel := core.V(math.Cos(angle)*speed, math.Sin(angle)*speed)
			s.Particles = append(s.Particles, NewParticle(p.ctx, ParticleDust, center, vel, rng.Intn(8)))
		}
	}

	switch {
	case p.Dashing > 0:
		p.Dashing--
	case p.Dashing < 0:
		p.Dashing++
	}

	if core.Abs(p.Dashing) > p.cfg.DashWindow {
		dir := float64(core.Sign(p.Dashing))
		p.Vel.X = dir * p.cfg.DashSpeed
		if core.Abs(p.Dashing) == p.cfg.DashWindow+1 {
			p.Vel.X *= 0.1
			vel := core.V(dir*rng.Float64()*3, 0)
			s.Particles = append(s.Particles, NewParticle(p.ctx, ParticleDust, center, vel, rng.Intn(8)))
		}
	}
}

// applyFriction pulls horizontal velocity toward zero without overshooting.
func (p *Player) applyFriction() {
	f := p.ctx.Config.Physics.Friction
	if p.Vel.X > 0 {
		p.Vel.X = math.Max(p.Vel.X-f, 0)
	} else {
		p.Vel.X = math.Min(p.Vel.X+f, 0)
	}
}

// Jump starts a jump or a wall jump and reports whether one happened.
// A wall jump only fires while pushing into the wall being slid on.
func (p *Player) Jump() bool {
	if p.WallSlide {
		switch {
		case p.Flip && p.LastMovement.X < 0:
			p.Vel = core.V(p.cfg.WallJumpX, p.cfg.WallJumpY)
		case !p.Flip && p.LastMovement.X > 0:
			p.Vel = core.V(-p.cfg.WallJumpX, p.cfg.WallJumpY)
		default:
			return false
		}
		p.AirTime = p.cfg.AirTimeThreshold + 1
		p.Jumps = max(0, p.Jumps-1)
		p.ctx.Play(audio.SoundJump)
		return true
	}

	if p.Jumps > 0 {
		p.Vel.Y = p.cfg.JumpVelocity
		p.Jumps--
		p.AirTime = p.cfg.AirTimeThreshold + 1
		p.ctx.Play(audio.SoundJump)
		return true
	}
	return false
}

// ReleaseJump cuts a rising jump short so a tap jumps lower than a hold.
func (p *Player) ReleaseJump() {
	if p.cfg.JumpReleaseCap == 0 {
		return
	}
	if p.Vel.Y < p.cfg.JumpReleaseCap {
		p.Vel.Y = p.cfg.JumpReleaseCap
	}
}

// Dash starts a dash in the facing direction unless one is running.
func (p *Player) Dash() bool {
	if p.Dashing != 0 {
		return false
	}
	p.ctx.Play(audio.SoundDash)
	if p.Flip {
		p.Dashing = -p.cfg.DashDuration
	} else {
		p.Dashing = p.cfg.DashDuration
	}
	return true
}

// Shoot throws a shuriken in the facing direction.
func (p *Player) Shoot(s *Scene) bool {
	if p.ShootCooldown > 0 || p.Dashing != 0 {
		return false
	}
	r := p.Rect()
	dir, x := p.cfg.ShurikenSpeed, float64(r.CenterX()+7)
	if p.Flip {
		dir, x = -dir, float64(r.CenterX()-7)
	}
	s.Projectiles = append(s.Projectiles,
		NewProjectile(p.ctx, OwnerPlayer, core.V(x, float64(r.CenterY())), dir, p.Damage))
	p.ShootCooldown = p.cfg.ShootCooldown
	p.ctx.Play(audio.SoundShoot)
	return true
}

// Render draws the player. The fast dash phase is invisible and the sprite
// blinks while invulnerable.
func (p *Player) Render(surf core.Surface, offset core.Point) {
	if core.Abs(p.Dashing) > p.cfg.DashWindow {
		return
	}
	if p.IFrames > 0 && (p.IFrames/4)%2 == 1 {
		return
	}
	p.Body.Render(surf, offset)
}

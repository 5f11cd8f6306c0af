package ninja

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Owner decides who a projectile can hurt.
type Owner int

const (
	OwnerEnemy  Owner = iota // Enemy bullet, hurts the player
	OwnerPlayer              // Shuriken, hurts enemies
)

// String returns the owner name used in logs.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Projectile flies horizontally until it hits a wall, a target or times out.
type Projectile struct {
	Pos       core.Vec
	Direction float64 // Pixels per tick, signed
	Timer     int
	Damage    int
	Owner     Owner
	Image     core.Image
}

// NewProjectile creates a projectile; shurikens use their own image.
func NewProjectile(ctx *Context, owner Owner, pos core.Vec, direction float64, damage int) *Projectile {
	key := "projectile"
	if owner == OwnerPlayer {
		key = "shuriken"
	}
	return &Projectile{
		Pos:       pos,
		Direction: direction,
		Damage:    damage,
		Owner:     owner,
		Image:     ctx.Image(key, 0),
	}
}

// Update moves the projectile, resolves its hits and reports whether it
// should be removed.
func (p *Projectile) Update(s *Scene) bool {
	p.Pos.X += p.Direction
	p.Timer++

	if _, solid := s.Tilemap.SolidCheck(p.Pos); solid {
		s.muzzle(p.Pos, p.Direction > 0, 4)
		return true
	}
	if p.Timer > s.ctx.Config.Scene.ProjectileTTL {
		return true
	}

	switch p.Owner {
	case OwnerEnemy:
		pl := s.Player
		if s.Dead == 0 && !pl.DashStriking() && pl.Vulnerable() && pl.Rect().ContainsVec(p.Pos) {
			s.hurtPlayer(p.Damage)
			return true
		}
	case OwnerPlayer:
		for _, e := range s.Enemies {
			if e.Killed || !e.Rect().ContainsVec(p.Pos) {
				continue
			}
			if e.Vulnerable() {
				s.hurtEnemy(e, p.Damage)
			}
			return true
		}
	}
	return false
}

// Render draws the projectile centred on its position.
func (p *Projectile) Render(surf core.Surface, offset core.Point) {
	surf.Blit(p.Image,
		int(p.Pos.X)-p.Image.W/2-offset.X,
		int(p.Pos.Y)-p.Image.H/2-offset.Y,
		p.Direction < 0)
}

// Package physics moves boxes through a tile world with axis-separated
// collision resolution.
package physics

import (
	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Default tuning, in pixels per tick.
const (
	DefaultGravity = 0.1
	DefaultMaxFall = 5.0
)

// RectSource supplies the solid rects near a position.
type RectSource interface {
	PhysicsRectsAround(pos core.Vec) []core.Rect
}

// Collisions records which sides touched a solid rect during the last Update.
type Collisions struct {
	Up, Down, Left, Right bool
}

// Horizontal reports a left or right contact.
func (c Collisions) Horizontal() bool {
	return c.Left || c.Right
}

// Body is a moving box with an animation.
type Body struct {
	Kind         string // Animation key prefix ("player", "enemy")
	Pos          core.Vec
	Vel          core.Vec
	W, H         int
	Collisions   Collisions
	Action       string
	Anim         *anim.Animation
	AnimOffset   core.Point
	Flip         bool
	LastMovement core.Vec
	Gravity      float64
	MaxFall      float64

	assets *asset.Table
}

// NewBody creates a body in the idle action. assets may be nil; animations
// then fall back to a plain box of the body's size.
func NewBody(kind string, pos core.Vec, w, h int, assets *asset.Table) *Body {
	b := &Body{
		Kind:       kind,
		Pos:        pos,
		W:          w,
		H:          h,
		AnimOffset: core.Pt(-3, -3),
		Gravity:    DefaultGravity,
		MaxFall:    DefaultMaxFall,
		assets:     assets,
	}
	b.SetAction("idle")
	return b
}

// Rect returns the hitbox, truncated to whole pixels.
func (b *Body) Rect() core.Rect {
	return core.NewRect(int(b.Pos.X), int(b.Pos.Y), b.W, b.H)
}

// SetAction switches animation when the action changes. Repeating the
// current action keeps the animation running.
func (b *Body) SetAction(action string) {
	if action == b.Action && b.Anim != nil {
		return
	}
	b.Action = action
	b.Anim = b.animation(b.Kind + "/" + action)
}

func (b *Body) animation(key string) *anim.Animation {
	if b.assets != nil {
		if a, err := b.assets.Animation(key); err == nil {
			return a
		}
	}
	return anim.New([]core.Image{{W: b.W, H: b.H, Glyph: '█'}}, 1, true)
}

// Update advances the body by one tick. movement is the per-tick input
// displacement added on top of velocity.
func (b *Body) Update(tiles RectSource, movement core.Vec) {
	b.Collisions = Collisions{}
	frame := movement.Add(b.Vel)

	b.Pos.X += frame.X
	r := b.Rect()
	for _, tile := range tiles.PhysicsRectsAround(b.Pos) {
		if !r.Intersects(tile) {
			continue
		}
		if frame.X > 0 {
			r.X = tile.X - r.W
			b.Collisions.Right = true
		}
		if frame.X < 0 {
			r.X = tile.Right()
			b.Collisions.Left = true
		}
		b.Pos.X = float64(r.X)
	}

	b.Pos.Y += frame.Y
	r = b.Rect()
	for _, tile := range tiles.PhysicsRectsAround(b.Pos) {
		if !r.Intersects(tile) {
			continue
		}
		if frame.Y > 0 {
			r.Y = tile.Y - r.H
			b.Collisions.Down = true
		}
		if frame.Y < 0 {
			r.Y = tile.Bottom()
			b.Collisions.Up = true
		}
		b.Pos.Y = float64(r.Y)
	}

	if movement.X > 0 {
		b.Flip = false
	}
	if movement.X < 0 {
		b.Flip = true
	}

	b.LastMovement = movement

	b.Vel.Y = min(b.MaxFall, b.Vel.Y+b.Gravity)
	if b.Collisions.Down || b.Collisions.Up {
		b.Vel.Y = 0
	}

	b.Anim.Update()
}

// Render blits the current frame, shifted by the animation offset.
func (b *Body) Render(surf core.Surface, offset core.Point) {
	surf.Blit(b.Anim.Img(),
		int(b.Pos.X)-offset.X+b.AnimOffset.X,
		int(b.Pos.Y)-offset.Y+b.AnimOffset.Y,
		b.Flip)
}

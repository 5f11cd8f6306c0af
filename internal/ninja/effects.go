package ninja

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Particle kinds, matching the particle/<kind> animation keys.
const (
	ParticleLeaf  = "leaf"
	ParticleDust  = "particle"
	sparkDecay    = 0.1
	burstSize     = 30
	leafWobble    = 0.035
	leafAmplitude = 0.3
)

// Spark is a short streak that flies along an angle and slows to a stop.
type Spark struct {
	Pos   core.Vec
	Angle float64
	Speed float64
	img   core.Image
}

// NewSpark creates a spark.
func NewSpark(ctx *Context, pos core.Vec, angle, speed float64) *Spark {
	return &Spark{Pos: pos, Angle: angle, Speed: speed, img: ctx.Image("spark", 0)}
}

// Update moves the spark and reports whether it has burned out.
func (s *Spark) Update() bool {
	s.Pos.X += math.Cos(s.Angle) * s.Speed
	s.Pos.Y += math.Sin(s.Angle) * s.Speed
	s.Speed = math.Max(0, s.Speed-sparkDecay)
	return s.Speed == 0
}

// Render draws the spark.
func (s *Spark) Render(surf core.Surface, offset core.Point) {
	surf.Blit(s.img, int(s.Pos.X)-offset.X, int(s.Pos.Y)-offset.Y, false)
}

// Particle is a drifting one-shot animation.
type Particle struct {
	Kind string
	Pos  core.Vec
	Vel  core.Vec
	Anim *anim.Animation
}

// NewParticle starts the particle/<kind> animation at the given frame.
func NewParticle(ctx *Context, kind string, pos, vel core.Vec, frame int) *Particle {
	a := ctx.Animation("particle/"+kind, false)
	a.Frame = core.Clamp(frame, 0, max(a.Len()-1, 0))
	return &Particle{Kind: kind, Pos: pos, Vel: vel, Anim: a}
}

// Update drifts the particle and reports whether its animation had already
// finished before this tick.
func (p *Particle) Update() bool {
	kill := p.Anim.Done
	p.Pos = p.Pos.Add(p.Vel)
	p.Anim.Update()
	return kill
}

// Render draws the particle centred on its position.
func (p *Particle) Render(surf core.Surface, offset core.Point) {
	img := p.Anim.Img()
	surf.Blit(img, int(p.Pos.X)-offset.X-img.W/2, int(p.Pos.Y)-offset.Y-img.H/2, false)
}

// burst throws sparks and dust in every direction from pos.
func (s *Scene) burst(pos core.Vec) {
	rng := s.ctx.Rand
	for i := 0; i < burstSize; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64() * 5
		s.Sparks = append(s.Sparks, NewSpark(s.ctx, pos, angle, 2+rng.Float64()))
		vel := core.V(math.Cos(angle+math.Pi)*speed*0.5, math.Sin(angle+math.Pi)*speed*0.5)
		s.Particles = append(s.Particles, NewParticle(s.ctx, ParticleDust, pos, vel, rng.Intn(8)))
	}
}

// muzzle throws a small fan of sparks, pointing left when left is set.
func (s *Scene) muzzle(pos core.Vec, left bool, n int) {
	rng := s.ctx.Rand
	for i := 0; i < n; i++ {
		angle := rng.Float64() - 0.5
		if left {
			angle += math.Pi
		}
		s.Sparks = append(s.Sparks, NewSpark(s.ctx, pos, angle, 2+rng.Float64()))
	}
}

package ninja

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/tilemap"
)

// LevelSource opens numbered levels. levels.Pack is the usual implementation.
type LevelSource interface {
	Count() int
	Open(n int, tileSize int, assets *asset.Table) (*tilemap.Tilemap, error)
}

// State is the lifecycle phase of a scene.
type State int

const (
	StateLoading State = iota
	StateActive
	StatePlayerDead
	StateLevelTransition
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StatePlayerDead:
		return "player_dead"
	case StateLevelTransition:
		return "level_transition"
	default:
		return "unknown"
	}
}

// shader is implemented by surfaces that can darken everything outside a
// circle, like core.Canvas.
type shader interface {
	Shade(x, y, radius int, fill rune)
}

const (
	exitW       = 8
	shakeOnHit  = 16.0
	bigSparkMin = 5.0
)

var (
	treeID     = tilemap.TileID{Type: tilemap.LargeDecor, Variant: 2}
	spawnerIDs = []tilemap.TileID{{Type: tilemap.Spawners, Variant: 0}, {Type: tilemap.Spawners, Variant: 1}}
	leafVel    = core.V(-0.1, 0.3)
)

// Scene owns one loaded level and everything living in it.
type Scene struct {
	Level       int
	Tilemap     *tilemap.Tilemap
	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
	Sparks      []*Spark
	Particles   []*Particle
	Leaves      []core.Rect // Leaf spawner areas under trees
	Clouds      *Clouds
	Exit        core.Rect

	Dead       int  // 0 while alive, then counts ticks since death
	Complete   bool // Every enemy is gone
	Transition int  // Negative while fading in, positive while fading out
	Scroll     core.Vec
	View       core.Point // Viewport size in pixels
	Shake      float64
	Paused     bool

	Kills  int
	Deaths int
	Ticks  int

	ctx    *Context
	src    LevelSource
	jitter core.Point
	events []core.Event
	err    error
}

// NewScene creates an empty scene. Call LoadLevel before updating it.
func NewScene(ctx *Context, src LevelSource) *Scene {
	return &Scene{
		ctx:    ctx,
		src:    src,
		Player: NewPlayer(ctx, core.Vec{}),
		Clouds: NewClouds(ctx, ctx.Config.Scene.Clouds),
		View:   core.Pt(320, 240),
	}
}

// SetView sets the viewport size in pixels used by the camera.
func (s *Scene) SetView(w, h int) {
	s.View = core.Pt(w, h)
}

// LoadLevel resets the scene onto level n.
func (s *Scene) LoadLevel(n int) error {
	m, err := s.src.Open(n, s.ctx.Config.Physics.TileSize, s.ctx.Assets)
	if err != nil {
		return fmt.Errorf("scene: loading level %d: %w", n, err)
	}

	s.Tilemap = m
	s.Level = n

	s.Leaves = s.Leaves[:0]
	for _, tree := range m.Extract([]tilemap.TileID{treeID}, true) {
		s.Leaves = append(s.Leaves, core.NewRect(4+int(tree.Pos.X), 4+int(tree.Pos.Y), 23, 13))
	}

	s.Enemies = nil
	spawned := false
	for _, sp := range m.Extract(spawnerIDs, false) {
		if sp.Variant == 0 {
			s.Player.Respawn(sp.Pos)
			s.Exit = core.NewRect(int(sp.Pos.X), int(sp.Pos.Y), exitW, s.Player.H)
			spawned = true
			continue
		}
		s.Enemies = append(s.Enemies, NewEnemy(s.ctx, sp.Pos, n))
	}
	if !spawned {
		s.ctx.Log.Warn("level has no player spawner", "level", n)
		s.Player.Heal()
	}

	s.Projectiles = nil
	s.Particles = nil
	s.Sparks = nil

	s.Dead = 0
	s.Complete = false
	s.Transition = -s.ctx.Config.Scene.TransitionTicks
	s.Scroll = core.Vec{}
	s.Shake = 0
	s.jitter = core.Point{}
	s.err = nil

	s.ctx.Log.Info("level loaded", "level", n, "enemies", len(s.Enemies), "leaves", len(s.Leaves))
	s.emit(core.EventLevelLoaded)
	return nil
}

// State reports the lifecycle phase.
func (s *Scene) State() State {
	switch {
	case s.Tilemap == nil:
		return StateLoading
	case s.Dead > 0:
		return StatePlayerDead
	case s.Complete:
		return StateLevelTransition
	default:
		return StateActive
	}
}

// Err returns the error of a failed automatic reload, if any.
func (s *Scene) Err() error {
	return s.err
}

// TogglePause freezes or resumes the simulation.
func (s *Scene) TogglePause() {
	s.Paused = !s.Paused
}

// Events returns and clears the events emitted since the last call.
func (s *Scene) Events() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Scene) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{Kind: kind, Level: s.Level})
}

// Update advances the scene by one tick.
func (s *Scene) Update(in core.InputFrame) {
	if s.Tilemap == nil || s.Paused || s.err != nil {
		return
	}
	cfg := s.ctx.Config.Scene
	s.Ticks++

	s.follow()
	s.Shake = math.Max(0, s.Shake-1)
	s.jitter = core.Point{}
	if s.Shake > 0 && s.ctx.Config.Render.Screenshake {
		s.jitter = core.Pt(
			int(s.ctx.Rand.Float64()*s.Shake-s.Shake/2),
			int(s.ctx.Rand.Float64()*s.Shake-s.Shake/2))
	}

	if s.Transition < 0 {
		s.Transition++
	}

	s.Clouds.Update()
	s.spawnLeaves()

	if len(s.Enemies) == 0 {
		if !s.Complete {
			s.Complete = true
			s.ctx.Log.Info("level cleared", "level", s.Level, "ticks", s.Ticks)
		}
		if !cfg.RequireExit || s.Player.Rect().Intersects(s.Exit) {
			s.Transition++
		}
		if s.Transition > cfg.TransitionTicks {
			s.emit(core.EventLevelComplete)
			s.reload(min(s.Level+1, s.src.Count()-1))
			return
		}
	}

	movement := core.V(float64(in.MoveX()), 0)
	if s.Dead > 0 {
		s.Dead++
		if s.Dead >= cfg.DeathFadeAt {
			s.Transition = min(cfg.TransitionTicks, s.Transition+1)
		}
		if s.Dead > cfg.DeathReloadAt {
			s.Deaths++
			s.emit(core.EventPlayerDied)
			s.reload(s.Level)
			return
		}
	} else {
		s.handleInput(in)
		s.Player.Update(s, movement)
	}

	enemies := make([]*Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if !e.Update(s) {
			enemies = append(enemies, e)
		}
	}
	s.Enemies = enemies

	sparks := make([]*Spark, 0, len(s.Sparks))
	for _, sp := range s.Sparks {
		if !sp.Update() {
			sparks = append(sparks, sp)
		}
	}
	s.Sparks = sparks

	projectiles := make([]*Projectile, 0, len(s.Projectiles))
	for _, p := range s.Projectiles {
		if !p.Update(s) {
			projectiles = append(projectiles, p)
		}
	}
	s.Projectiles = projectiles

	// Shurikens kill during the projectile phase.
	enemies = s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Killed {
			enemies = append(enemies, e)
		}
	}
	s.Enemies = enemies

	particles := make([]*Particle, 0, len(s.Particles))
	for _, p := range s.Particles {
		kill := p.Update()
		if p.Kind == ParticleLeaf {
			p.Pos.X += math.Sin(float64(p.Anim.Frame)*leafWobble) * leafAmplitude
		}
		if !kill {
			particles = append(particles, p)
		}
	}
	s.Particles = particles
}

// handleInput applies the one-shot actions of this tick.
func (s *Scene) handleInput(in core.InputFrame) {
	p := s.Player
	if in.Has(core.ActionJump) {
		p.Jump()
	}
	if in.Has(core.ActionJumpRelease) {
		p.ReleaseJump()
	}
	if in.Has(core.ActionDash) {
		p.Dash()
	}
	if in.Has(core.ActionShoot) {
		p.Shoot(s)
	}
}

func (s *Scene) reload(n int) {
	if err := s.LoadLevel(n); err != nil {
		s.ctx.Log.Error("level reload failed", "level", n, "err", err)
		s.err = err
	}
}

// follow eases the camera toward the player.
func (s *Scene) follow() {
	lag := math.Max(s.ctx.Config.Scene.CameraLag, 1)
	c := s.Player.Rect().CenterVec()
	s.Scroll.X += (c.X - float64(s.View.X)/2 - s.Scroll.X) / lag
	s.Scroll.Y += (c.Y - float64(s.View.Y)/2 - s.Scroll.Y) / lag
}

func (s *Scene) spawnLeaves() {
	rng := s.ctx.Rand
	for _, r := range s.Leaves {
		if rng.Float64()*s.ctx.Config.Scene.LeafRate >= float64(r.W*r.H) {
			continue
		}
		pos := core.V(float64(r.X)+rng.Float64()*float64(r.W), float64(r.Y)+rng.Float64()*float64(r.H))
		s.Particles = append(s.Particles, NewParticle(s.ctx, ParticleLeaf, pos, leafVel, rng.Intn(21)))
	}
}

func (s *Scene) shake(amount float64) {
	s.Shake = math.Max(amount, s.Shake)
}

// hurtPlayer applies a bullet hit. A fatal hit starts the death countdown.
func (s *Scene) hurtPlayer(damage int) {
	p := s.Player
	s.shake(shakeOnHit)
	s.ctx.Play(audio.SoundHit)
	s.burst(p.Rect().CenterVec())

	if p.TakeDamage(damage) {
		p.Stagger()
		s.ctx.Log.Debug("player hit", "damage", damage, "health", p.Health)
		return
	}
	s.Dead = max(s.Dead, 1)
	s.ctx.Log.Info("player killed", "level", s.Level)
}

// hurtEnemy applies a dash or shuriken hit and marks the enemy killed when
// its health runs out.
func (s *Scene) hurtEnemy(e *Enemy, damage int) {
	s.shake(shakeOnHit)
	s.ctx.Play(audio.SoundHit)
	center := e.Rect().CenterVec()
	s.burst(center)

	if e.TakeDamage(damage) {
		e.Stagger()
		s.ctx.Log.Debug("enemy hit", "damage", damage, "health", e.Health)
		return
	}

	e.Killed = true
	s.Sparks = append(s.Sparks,
		NewSpark(s.ctx, center, 0, bigSparkMin+s.ctx.Rand.Float64()),
		NewSpark(s.ctx, center, math.Pi, bigSparkMin+s.ctx.Rand.Float64()))
	s.Kills++
	s.emit(core.EventEnemyKilled)
	s.ctx.Log.Info("enemy killed", "level", s.Level, "kills", s.Kills)
}

// Offset returns the render offset: the truncated camera plus screenshake.
func (s *Scene) Offset() core.Point {
	return core.Pt(int(s.Scroll.X), int(s.Scroll.Y)).Add(s.jitter)
}

// Render draws the scene back to front.
func (s *Scene) Render(surf core.Surface) {
	if s.Tilemap == nil {
		return
	}
	offset := s.Offset()

	s.Clouds.Render(surf, offset)
	s.Tilemap.Render(surf, offset)

	if s.Complete {
		surf.Blit(s.ctx.Image("exit", 0), s.Exit.X-offset.X, s.Exit.Y-offset.Y, false)
	}

	for _, e := range s.Enemies {
		e.Render(surf, offset)
	}
	if s.Dead == 0 {
		s.Player.Render(surf, offset)
	}
	for _, sp := range s.Sparks {
		sp.Render(surf, offset)
	}
	for _, p := range s.Projectiles {
		p.Render(surf, offset)
	}
	for _, p := range s.Particles {
		p.Render(surf, offset)
	}

	if s.Transition != 0 {
		if sh, ok := surf.(shader); ok {
			radius := (s.ctx.Config.Scene.TransitionTicks - core.Abs(s.Transition)) * 8
			sh.Shade(surf.Width()/2, surf.Height()/2, max(radius, 0), '░')
		}
	}
}

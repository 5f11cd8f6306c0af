package ninja

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier of the platformer.
const GameID = "ninja"

// Settings applied on the next Reset, set by the CLI before the game starts.
var (
	configPath       string
	themePath        string
	difficultyPreset config.DifficultyPreset
	levelSource      LevelSource
	startLevel       int
	audioPlayer      audio.Player
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetThemePath sets a YAML theme replacing the built-in art.
func SetThemePath(path string) {
	themePath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLevels replaces the embedded level pack.
func SetLevels(src LevelSource) {
	levelSource = src
}

// SetStartLevel sets the zero-based level the next game starts on.
func SetStartLevel(level int) {
	startLevel = level
}

// SetAudio sets the sound effect sink shared by every game instance.
func SetAudio(p audio.Player) {
	audioPlayer = p
}

// SetLogger sets the logger for gameplay records.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Scene to the registry.Game contract: fixed-step updates,
// HUD and pause overlay on top of the pixel canvas.
type Game struct {
	ctx     *Context
	scene   *Scene
	src     LevelSource
	runtime core.RuntimeConfig
	score   int
	won     bool
	err     error

	start    int
	startSet bool
}

// New creates a platformer instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ninja Platformer"
}

// Reset loads the configuration, assets and start level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.score = 0
	g.won = false
	g.err = nil

	lg := logger
	if lg == nil {
		lg = log.New(io.Discard)
	}

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		lg.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	if err := cfg.Validate(); err != nil {
		lg.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}

	assets, err := loadAssets()
	if err != nil {
		g.err = err
		return
	}

	g.src = levelSource
	if g.src == nil {
		pack, err := levels.Default()
		if err != nil {
			g.err = err
			return
		}
		g.src = pack
	}

	g.ctx = NewContext(cfg, assets, audioPlayer, lg, runtime.Seed)
	g.scene = NewScene(g.ctx, g.src)
	g.scene.SetView(runtime.ScreenW*cfg.Render.CellWidth, runtime.ScreenH*cfg.Render.CellHeight)

	start := startLevel
	if g.startSet {
		start = g.start
	}
	start = max(0, min(start, g.src.Count()-1))
	if err := g.scene.LoadLevel(start); err != nil {
		g.err = err
		lg.Error("cannot start", "level", start, "err", err)
	}
}

func loadAssets() (*asset.Table, error) {
	if themePath != "" {
		return asset.LoadFile(themePath)
	}
	return asset.Default()
}

// StartAt makes every following Reset of this instance begin on the given
// level instead of the one set with SetStartLevel.
func (g *Game) StartAt(level int) {
	g.start = level
	g.startSet = true
}

// Scene exposes the running scene.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.won || g.scene == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.scene.TogglePause()
	}
	if in.Has(core.ActionRestart) && !g.scene.Paused {
		if err := g.scene.LoadLevel(g.scene.Level); err != nil {
			g.err = err
		}
	}

	g.scene.Update(in)

	events := g.scene.Events()
	last := g.src.Count() - 1
	for _, ev := range events {
		switch ev.Kind {
		case core.EventEnemyKilled:
			g.score += g.ctx.Config.Scene.ScorePerKill
		case core.EventLevelComplete:
			if ev.Level >= last {
				g.won = true
				g.ctx.Log.Info("pack cleared", "score", g.score, "deaths", g.scene.Deaths)
			}
		}
	}
	if err := g.scene.Err(); err != nil {
		g.err = err
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the scene onto a pixel canvas over dst, then the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		drawCenteredMessage(dst, "LEVEL ERROR", g.err.Error())
		return
	}
	if g.scene == nil {
		return
	}

	cfg := g.ctx.Config.Render
	canvas := core.NewCanvas(dst, cfg.CellWidth, cfg.CellHeight)
	g.scene.SetView(canvas.Width(), canvas.Height())
	g.scene.Render(canvas)

	g.drawHUD(dst)

	switch {
	case g.won:
		drawCenteredMessage(dst, "ALL LEVELS CLEARED", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.scene.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.scene
	hud := fmt.Sprintf(" Level %d/%d  Enemies %d  Score %d  HP %d/%d ",
		s.Level+1, g.src.Count(), len(s.Enemies), g.score, s.Player.Health, s.Player.MaxHealth)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	switch s.State() {
	case StatePlayerDead:
		dst.DrawTextCentered(dst.Height()/2, " YOU DIED ")
	case StateLevelTransition:
		dst.DrawTextCentered(1, " LEVEL CLEAR ")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.won || g.err != nil,
	}
	if g.scene != nil {
		st.Level = g.scene.Level
		st.Paused = g.scene.Paused
	}
	return st
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

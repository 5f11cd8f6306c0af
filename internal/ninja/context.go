// Package ninja implements the tile platformer: a ninja who runs, wall-jumps
// and dashes through enemy gunmen across a pack of tile levels.
package ninja

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Context carries the collaborators every entity needs. It is built once per
// game instance and passed down; entities never reach for globals.
type Context struct {
	Assets     *asset.Table
	Audio      audio.Player
	Log        *log.Logger
	Config     config.PlatformerConfig
	Rand       *rand.Rand
	Difficulty *config.DifficultyManager
}

// NewContext fills in silent audio and a discarding logger when they are nil.
func NewContext(cfg config.PlatformerConfig, assets *asset.Table, player audio.Player, logger *log.Logger, seed int64) *Context {
	if player == nil {
		player = audio.Silent{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if assets == nil {
		assets = asset.NewTable()
	}
	return &Context{
		Assets:     assets,
		Audio:      player,
		Log:        logger,
		Config:     cfg,
		Rand:       rand.New(rand.NewSource(seed)),
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Play fires a sound effect.
func (c *Context) Play(name string) {
	c.Audio.Play(name)
}

// Image looks up an image, substituting a one-cell placeholder for missing
// assets so a sparse theme never stops the game.
func (c *Context) Image(key string, variant int) core.Image {
	img, err := c.Assets.Image(key, variant)
	if err != nil {
		return core.Image{W: 4, H: 4, Glyph: '?', Color: core.ColorMagenta}
	}
	return img
}

// Animation returns a fresh copy of an animation, or a single placeholder
// frame when the key is missing.
func (c *Context) Animation(key string, loop bool) *anim.Animation {
	a, err := c.Assets.Animation(key)
	if err != nil {
		return anim.New([]core.Image{{W: 4, H: 4, Glyph: '·'}}, 1, loop)
	}
	return a
}

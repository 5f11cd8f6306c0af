package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/ninja"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLevel      int
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level pack",
	Long: `Start playing from the given level. Clearing a level loads the next one;
clearing the last level ends the game and records your score.

Controls:
  Left/Right, A/D    - Run
  Space/Up/W/Z       - Jump (tap for a short hop, wall jump against walls)
  X                  - Dash
  C/F                - Throw shuriken
  P                  - Pause
  R                  - Restart (after game over)
  Esc                - Back (while paused or after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - More player health, weaker enemies, gentle progression
  normal - Default tuning
  hard   - Less player health, enemies aggressive from the start
  fixed  - No progression across levels

Examples:
  platformer play
  platformer play --level 2
  platformer play --difficulty hard --sound
  platformer play --config ./my-platformer.toml
  platformer play --levels ./maps`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
}

// addGameFlags registers the flags shared by the commands that start a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Path to a YAML art theme")
}

// configureGame applies the game flags and returns the loaded config. Sound
// plays only when allowed and requested by --sound or the config. The
// returned cleanup releases the audio device.
func configureGame(allowSound bool) (config.PlatformerConfig, func(), error) {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return config.PlatformerConfig{}, nil, err
		}
	}
	ninja.SetConfigPath(flagConfig)
	ninja.SetThemePath(flagTheme)
	ninja.SetDifficultyPreset(flagDifficulty)

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	player := audio.New(allowSound && (flagSound || cfg.Audio.Enabled), cfg.Audio.Volume, logger)
	ninja.SetAudio(player)
	cleanup := func() {
		if s, ok := player.(*audio.Speaker); ok {
			s.Close()
		}
	}
	return cfg, cleanup, nil
}

// loadSummaries opens every level of the pack with the configured tile size
// and art.
func loadSummaries(p *levels.Pack, cfg config.PlatformerConfig) ([]levels.Summary, error) {
	assets, err := asset.Default()
	if flagTheme != "" {
		assets, err = asset.LoadFile(flagTheme)
	}
	if err != nil {
		return nil, err
	}
	return p.Summaries(cfg.Physics.TileSize, assets), nil
}

// openStore opens the score database, continuing without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, cleanup, err := configureGame(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	p, err := pack()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Broken levels are fatal before the terminal is taken over.
	summaries, err := loadSummaries(p, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, s := range summaries {
		if s.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", s.Err)
			os.Exit(1)
		}
	}

	ninja.SetStartLevel(p.Clamp(flagLevel - 1))

	game, err := registry.Create(ninja.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, logger, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		cleanup()
		os.Exit(1)
	}
}

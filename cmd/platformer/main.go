// platformer is a tile-based ninja platformer played in the terminal.
//
// Usage:
//
//	platformer play              - Play the level pack from the first level
//	platformer menu              - Pick a level interactively
//	platformer levels            - List the levels of the pack
//	platformer scores            - Show high scores and furthest runs
//	platformer serve             - Start SSH server for remote play
//	platformer level <op> <file> - Create, autotile, inspect or validate a map
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/scores.db)
//	--log <path>    - Write debug logs to a file
//
// A .env file in the working directory may set PLATFORMER_DB,
// PLATFORMER_LEVELS and PLATFORMER_LOG.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/ninja"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagLevels  string
)

var (
	logger  *log.Logger
	logFile *os.File
)

func main() {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	// Registered here so the defaults see variables from .env.
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("PLATFORMER_DB", "~/.platformer/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", os.Getenv("PLATFORMER_LOG"), "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", os.Getenv("PLATFORMER_LEVELS"), "Directory of numbered level files (default: built-in pack)")

	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Ninja Platformer - jump, dash and throw shurikens in your terminal",
	Long: `Ninja Platformer is a tile-based platformer rendered with half-block
pixels directly in your terminal.

Available commands:
  play     - Play the level pack
  menu     - Interactive level picker
  levels   - List the levels of the pack
  scores   - View high scores and furthest runs
  serve    - Start SSH server for remote play
  level    - Level file tools (new, autotile, info, validate)

Examples:
  platformer play
  platformer play --level 3 --difficulty hard
  platformer menu --levels ./maps
  platformer serve --ssh :2222
  platformer level new ./maps/0.json`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelCmd)
}

// setup wires the shared logger and level pack into the game before any
// command runs.
func setup(_ *cobra.Command, _ []string) error {
	logger = newLogger()
	ninja.SetLogger(logger)

	if flagLevels != "" {
		pack, err := levels.Dir(flagLevels)
		if err != nil {
			return err
		}
		ninja.SetLevels(pack)
	}
	return nil
}

// newLogger returns a debug file logger when --log is set, otherwise a
// logger that discards everything. The terminal belongs to the game.
func newLogger() *log.Logger {
	if flagLogPath == "" {
		return log.New(io.Discard)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard)
	}
	logFile = f
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "platformer",
	})
}

// pack returns the level pack selected by --levels, or the built-in one.
func pack() (*levels.Pack, error) {
	if flagLevels != "" {
		return levels.Dir(flagLevels)
	}
	return levels.Default()
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/tilemap"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Level file tools",
	Long: `Create and maintain level files without the game running.

Subcommands:
  new       - Create a starter level (or re-save an existing one)
  autotile  - Pick grass and stone variants from their neighbours
  erase     - Remove the tiles under a pixel
  info      - Print tile counts and bounds
  validate  - Check a level against the art set

Examples:
  platformer level new ./maps/0.json
  platformer level autotile ./maps/0.json
  platformer level erase ./maps/0.json 120 64
  platformer level validate ./maps/0.json --theme ./theme.yaml`,
}

var levelNewCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a starter level",
	Long: `Writes a starter level (a grass floor crossed by a stone column) to the
file. An existing file is loaded and saved back unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		m, err := openLevel(args[0], true)
		if err != nil {
			return err
		}
		if err := m.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved %s (%d tiles)\n", args[0], m.Len()+len(m.Offgrid()))
		return nil
	},
}

var levelAutotileCmd = &cobra.Command{
	Use:   "autotile <file>",
	Short: "Autotile grass and stone",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		m, err := openLevel(args[0], false)
		if err != nil {
			return err
		}
		if err := m.Autotile(); err != nil {
			return err
		}
		if err := m.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Autotiled %s\n", args[0])
		return nil
	},
}

var levelEraseCmd = &cobra.Command{
	Use:   "erase <file> <x> <y>",
	Short: "Remove the grid tile and off-grid tiles under a pixel",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", args[1], err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid y %q: %w", args[2], err)
		}

		m, err := openLevel(args[0], false)
		if err != nil {
			return err
		}

		pos := core.V(x, y)
		removed := m.RemoveOffgridAt(pos)
		if m.Remove(m.Cell(pos)) {
			removed++
		}
		if removed == 0 {
			fmt.Println("Nothing to erase.")
			return nil
		}
		if err := m.Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("Erased %d tiles from %s\n", removed, args[0])
		return nil
	},
}

var levelInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print tile counts and bounds",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		m, err := openLevel(args[0], false)
		if err != nil {
			return err
		}

		fmt.Printf("Level %s\n", args[0])
		fmt.Println()
		fmt.Printf("  Tile size: %d\n", m.TileSize)
		fmt.Printf("  Grid:      %d\n", m.Len())
		fmt.Printf("  Off-grid:  %d\n", len(m.Offgrid()))
		if r, ok := m.Bounds(); ok {
			fmt.Printf("  Bounds:    (%d,%d) %dx%d tiles\n", r.X, r.Y, r.W, r.H)
		}

		fmt.Println()
		counts := m.Counts()
		for _, t := range tilemap.AllTypes {
			fmt.Printf("  %-12s %d\n", t, counts[t])
		}
		return nil
	},
}

var levelValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a level against the art set",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		m, err := openLevel(args[0], false)
		if err != nil {
			return err
		}
		if err := m.Validate(); err != nil {
			return err
		}

		player := m.Extract([]tilemap.TileID{{Type: tilemap.Spawners, Variant: 0}}, true)
		if len(player) == 0 {
			return fmt.Errorf("%s: %w", args[0], errNoPlayerSpawn)
		}
		fmt.Printf("%s is valid\n", args[0])
		return nil
	},
}

var errNoPlayerSpawn = errors.New("no player spawn")

func init() {
	for _, c := range []*cobra.Command{levelNewCmd, levelAutotileCmd, levelEraseCmd, levelInfoCmd, levelValidateCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
		c.Flags().StringVar(&flagTheme, "theme", "", "Path to a YAML art theme")
		levelCmd.AddCommand(c)
	}
}

// openLevel loads a level file with the configured tile size and art. When
// starter is set, a missing file yields the starter map instead of an error.
func openLevel(path string, starter bool) (*tilemap.Tilemap, error) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return nil, err
	}
	assets, err := asset.Default()
	if flagTheme != "" {
		assets, err = asset.LoadFile(flagTheme)
	}
	if err != nil {
		return nil, err
	}

	m := tilemap.New(cfg.Physics.TileSize, assets)
	err = m.Load(path)
	switch {
	case err == nil:
		return m, nil
	case starter && errors.Is(err, fs.ErrNotExist):
		logger.Info("starting a new level", "path", path)
		return tilemap.NewStarter(cfg.Physics.TileSize, assets), nil
	}
	return nil, err
}

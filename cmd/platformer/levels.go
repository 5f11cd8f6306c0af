package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the pack",
	Long: `Shows every level of the active pack with its tile and enemy counts.
Levels that fail to load are listed with their error and make the
command exit with status 1.

Examples:
  platformer levels
  platformer levels --levels ./maps`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	levelsCmd.Flags().StringVar(&flagTheme, "theme", "", "Path to a YAML art theme")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := pack()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	summaries, err := loadSummaries(p, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Levels in %s:\n", p.Name())
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-6s  %-7s  %s\n", "Level", "Tiles", "Enemies", "Spawn")
	fmt.Printf("  %-5s  %-6s  %-7s  %s\n", "-----", "-----", "-------", "-----")

	broken := 0
	for _, s := range summaries {
		if s.Err != nil {
			broken++
			fmt.Printf("  %-5d  error: %v\n", s.Index+1, s.Err)
			continue
		}
		spawn := "yes"
		if !s.Player {
			spawn = "MISSING"
		}
		fmt.Printf("  %-5d  %-6d  %-7d  %s\n", s.Index+1, s.Tiles, s.Enemies, spawn)
	}

	fmt.Println()
	if broken > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d levels failed to load\n", broken, len(summaries))
		os.Exit(1)
	}
	fmt.Println("Run 'platformer play --level <n>' to start on a level.")
}

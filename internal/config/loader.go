package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Keys missing from a file keep their default values. A customPath ending in
// .toml is decoded as TOML.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension.
func decode(path string, data []byte, cfg *PlatformerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// Validate rejects settings the engine cannot run with.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Physics.TileSize <= 0:
		return fmt.Errorf("config: physics.tile_size must be positive, got %d", c.Physics.TileSize)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0:
		return fmt.Errorf("config: enemy size must be positive, got %dx%d", c.Enemy.Width, c.Enemy.Height)
	case c.Player.Health <= 0:
		return fmt.Errorf("config: player.health must be positive, got %d", c.Player.Health)
	case c.Player.DashWindow >= c.Player.DashDuration:
		return fmt.Errorf("config: player.dash_window (%d) must be below dash_duration (%d)", c.Player.DashWindow, c.Player.DashDuration)
	case c.Enemy.WalkMin > c.Enemy.WalkMax:
		return fmt.Errorf("config: enemy.walk_min (%d) exceeds walk_max (%d)", c.Enemy.WalkMin, c.Enemy.WalkMax)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("config: render cell size must be positive, got %dx%d", c.Render.CellWidth, c.Render.CellHeight)
	case c.Scene.CameraLag < 1:
		return fmt.Errorf("config: scene.camera_lag must be at least 1, got %v", c.Scene.CameraLag)
	}
	return nil
}

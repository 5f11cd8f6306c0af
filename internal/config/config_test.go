package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded platformer.yaml differs from DefaultPlatformerConfig()\n got: %+v\nwant: %+v", cfg, DefaultPlatformerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadPlatformerCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "player:\n  health: 4\nscene:\n  require_exit: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if cfg.Player.Health != 4 || !cfg.Scene.RequireExit {
		t.Errorf("overrides not applied: health=%d require_exit=%v", cfg.Player.Health, cfg.Scene.RequireExit)
	}
	if cfg.Player.JumpVelocity != -3 {
		t.Errorf("JumpVelocity = %v, expected default -3 to survive a partial file", cfg.Player.JumpVelocity)
	}
}

func TestLoadPlatformerCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	body := "[physics]\ngravity = 0.2\n\n[enemy]\nwalk_max = 90\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.2 || cfg.Enemy.WalkMax != 90 {
		t.Errorf("toml overrides = (%v, %d), expected (0.2, 90)", cfg.Physics.Gravity, cfg.Enemy.WalkMax)
	}
	if cfg.Physics.MaxFall != 5 {
		t.Errorf("MaxFall = %v, expected default 5", cfg.Physics.MaxFall)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadPlatformer(tc.path); err == nil {
				t.Error("LoadPlatformer() error = nil, expected error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	easy := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&easy, DifficultyEasy)
	if easy.Player.Health != 3 || easy.Difficulty.InitialLevel != 0 {
		t.Errorf("easy = health %d, initial %v", easy.Player.Health, easy.Difficulty.InitialLevel)
	}

	hard := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&hard, DifficultyHard)
	if hard.Enemy.Health != 20 || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard = enemy health %d, initial %v", hard.Enemy.Health, hard.Difficulty.InitialLevel)
	}

	fixed := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
	}{
		{"tile size", func(c *PlatformerConfig) { c.Physics.TileSize = 0 }},
		{"player size", func(c *PlatformerConfig) { c.Player.Height = 0 }},
		{"health", func(c *PlatformerConfig) { c.Player.Health = 0 }},
		{"dash window", func(c *PlatformerConfig) { c.Player.DashWindow = 60 }},
		{"walk range", func(c *PlatformerConfig) { c.Enemy.WalkMin = 200 }},
		{"cell size", func(c *PlatformerConfig) { c.Render.CellWidth = 0 }},
		{"camera lag", func(c *PlatformerConfig) { c.Scene.CameraLag = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, expected error")
			}
		})
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPlatformerConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{"first level", 0, 0},
		{"midway", 2, 0.4},
		{"max", 5, 1},
		{"beyond max clamps", 50, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.Level(tc.level, 0); got != tc.want {
				t.Errorf("Level(%d) = %v, expected %v", tc.level, got, tc.want)
			}
		})
	}

	if got := dm.Speed(1.5, 5, 0); got != 3 {
		t.Errorf("Speed(1.5) at max = %v, expected 3", got)
	}
	if got := dm.WalkChance(0.01, 5, 0); got < 0.0299 || got > 0.0301 {
		t.Errorf("WalkChance(0.01) at max = %v, expected 0.03", got)
	}
	if got := dm.WalkMax(120, 30, 5, 0); got != 100 {
		t.Errorf("WalkMax(120) at max = %d, expected 100", got)
	}
	if got := dm.WalkMax(40, 30, 5, 0); got != 30 {
		t.Errorf("WalkMax(40) floor = %d, expected 30", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.3)
	if got := dm.Level(5, 0); got != 0.3 {
		t.Errorf("disabled Level() = %v, expected initial 0.3", got)
	}
}

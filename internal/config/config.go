// Package config provides YAML/TOML configuration loading and difficulty
// management for the platformer.
package config

import "fmt"

// PlatformerConfig contains all tunables of the ninja platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics" toml:"physics"`
	Player     PlatformerPlayer  `yaml:"player" toml:"player"`
	Enemy      PlatformerEnemy   `yaml:"enemy" toml:"enemy"`
	Scene      PlatformerScene   `yaml:"scene" toml:"scene"`
	Render     PlatformerRender  `yaml:"render" toml:"render"`
	Audio      PlatformerAudio   `yaml:"audio" toml:"audio"`
	Difficulty DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
}

// PlatformerPhysics defines world-wide physics parameters.
type PlatformerPhysics struct {
	TileSize int     `yaml:"tile_size" toml:"tile_size"`
	Gravity  float64 `yaml:"gravity" toml:"gravity"`
	MaxFall  float64 `yaml:"max_fall" toml:"max_fall"`
	Friction float64 `yaml:"friction" toml:"friction"`
}

// PlatformerPlayer defines player movement and combat parameters.
type PlatformerPlayer struct {
	Width            int     `yaml:"width" toml:"width"`
	Height           int     `yaml:"height" toml:"height"`
	Health           int     `yaml:"health" toml:"health"`
	Damage           int     `yaml:"damage" toml:"damage"`
	IWindow          int     `yaml:"i_window" toml:"i_window"`
	JumpVelocity     float64 `yaml:"jump_velocity" toml:"jump_velocity"`
	JumpReleaseCap   float64 `yaml:"jump_release_cap" toml:"jump_release_cap"` // 0 disables variable jump height
	WallJumpX        float64 `yaml:"wall_jump_x" toml:"wall_jump_x"`
	WallJumpY        float64 `yaml:"wall_jump_y" toml:"wall_jump_y"`
	WallSlideCap     float64 `yaml:"wall_slide_cap" toml:"wall_slide_cap"`
	AirTimeThreshold int     `yaml:"air_time_threshold" toml:"air_time_threshold"`
	FallDeathTicks   int     `yaml:"fall_death_ticks" toml:"fall_death_ticks"`
	DashSpeed        float64 `yaml:"dash_speed" toml:"dash_speed"`
	DashDuration     int     `yaml:"dash_duration" toml:"dash_duration"`
	DashWindow       int     `yaml:"dash_window" toml:"dash_window"` // |timer| above this is the fast, invisible phase
	ShootCooldown    int     `yaml:"shoot_cooldown" toml:"shoot_cooldown"`
	ShurikenSpeed    float64 `yaml:"shuriken_speed" toml:"shuriken_speed"`
}

// PlatformerEnemy defines enemy AI and combat parameters.
type PlatformerEnemy struct {
	Width           int     `yaml:"width" toml:"width"`
	Height          int     `yaml:"height" toml:"height"`
	Health          int     `yaml:"health" toml:"health"`
	Damage          int     `yaml:"damage" toml:"damage"`
	IWindow         int     `yaml:"i_window" toml:"i_window"`
	WalkSpeed       float64 `yaml:"walk_speed" toml:"walk_speed"`
	WalkChance      float64 `yaml:"walk_chance" toml:"walk_chance"`
	WalkMin         int     `yaml:"walk_min" toml:"walk_min"`
	WalkMax         int     `yaml:"walk_max" toml:"walk_max"`
	ProjectileSpeed float64 `yaml:"projectile_speed" toml:"projectile_speed"`
	SightHeight     float64 `yaml:"sight_height" toml:"sight_height"`
}

// PlatformerScene defines level lifecycle timings.
type PlatformerScene struct {
	TransitionTicks int     `yaml:"transition_ticks" toml:"transition_ticks"`
	DeathFadeAt     int     `yaml:"death_fade_at" toml:"death_fade_at"`
	DeathReloadAt   int     `yaml:"death_reload_at" toml:"death_reload_at"`
	RequireExit     bool    `yaml:"require_exit" toml:"require_exit"`
	CameraLag       float64 `yaml:"camera_lag" toml:"camera_lag"`
	Clouds          int     `yaml:"clouds" toml:"clouds"`
	LeafRate        float64 `yaml:"leaf_rate" toml:"leaf_rate"`
	ProjectileTTL   int     `yaml:"projectile_ttl" toml:"projectile_ttl"`
	ScorePerKill    int     `yaml:"score_per_kill" toml:"score_per_kill"`
}

// PlatformerRender defines how pixels map onto terminal cells.
type PlatformerRender struct {
	CellWidth   int  `yaml:"cell_width" toml:"cell_width"`
	CellHeight  int  `yaml:"cell_height" toml:"cell_height"`
	Screenshake bool `yaml:"screenshake" toml:"screenshake"`
}

// PlatformerAudio defines sound output.
type PlatformerAudio struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "level", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Level index or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier      float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`           // Added to enemy speeds at max difficulty
	AggressionMultiplier float64 `yaml:"aggression_multiplier" toml:"aggression_multiplier"` // Added to walk chance at max difficulty
	PauseReduction       int     `yaml:"pause_reduction" toml:"pause_reduction"`             // Walk duration reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Easy grants extra lives; hard toughens enemies.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = max(cfg.Player.Health, 3)
	case DifficultyHard:
		cfg.Player.Health = 1
		cfg.Enemy.Health *= 2
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			TileSize: 16,
			Gravity:  0.1,
			MaxFall:  5,
			Friction: 0.1,
		},
		Player: PlatformerPlayer{
			Width:            8,
			Height:           15,
			Health:           1,
			Damage:           10,
			IWindow:          30,
			JumpVelocity:     -3,
			JumpReleaseCap:   -1,
			WallJumpX:        3.5,
			WallJumpY:        -2.5,
			WallSlideCap:     0.5,
			AirTimeThreshold: 4,
			FallDeathTicks:   120,
			DashSpeed:        8,
			DashDuration:     60,
			DashWindow:       50,
			ShootCooldown:    30,
			ShurikenSpeed:    3,
		},
		Enemy: PlatformerEnemy{
			Width:           8,
			Height:          15,
			Health:          10,
			Damage:          1,
			IWindow:         30,
			WalkSpeed:       0.5,
			WalkChance:      0.01,
			WalkMin:         30,
			WalkMax:         120,
			ProjectileSpeed: 1.5,
			SightHeight:     16,
		},
		Scene: PlatformerScene{
			TransitionTicks: 30,
			DeathFadeAt:     10,
			DeathReloadAt:   40,
			RequireExit:     false,
			CameraLag:       30,
			Clouds:          16,
			LeafRate:        49999,
			ProjectileTTL:   360,
			ScorePerKill:    100,
		},
		Render: PlatformerRender{
			CellWidth:   4,
			CellHeight:  8,
			Screenshake: true,
		},
		Audio: PlatformerAudio{
			Enabled: false,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:      1.0,
				AggressionMultiplier: 2.0,
				PauseReduction:       20,
			},
		},
	}
}

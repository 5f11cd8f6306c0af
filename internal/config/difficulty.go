package config

import "math"

// DifficultyManager calculates enemy parameters from progress through the
// level pack (or elapsed ticks).
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the level
// index or tick count, depending on the progression type.
func (d *DifficultyManager) Level(level int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(level) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an enemy speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base float64, level int, ticks int) float64 {
	return base * (1.0 + d.Level(level, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// WalkChance scales the per-tick chance that an idle enemy starts walking.
func (d *DifficultyManager) WalkChance(base float64, level int, ticks int) float64 {
	return clampF(base*(1.0+d.Level(level, ticks)*d.cfg.Scaling.AggressionMultiplier), 0, 1)
}

// WalkMax shortens the longest walk so enemies reach their shot sooner.
func (d *DifficultyManager) WalkMax(base, floor int, level int, ticks int) int {
	reduction := int(d.Level(level, ticks) * float64(d.cfg.Scaling.PauseReduction))
	result := base - reduction
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

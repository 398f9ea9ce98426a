package config

import "math"

// DifficultyManager derives enemy aggression from the stage number.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a stage.
func (d *DifficultyManager) Level(stage int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "stage" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(stage-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FireChance returns the per-tick probability that an enemy uses a queued shot.
func (d *DifficultyManager) FireChance(base float64, stage int) float64 {
	return clampF(base+d.Level(stage)*d.cfg.Scaling.FireChanceBonus, 0.0, 1.0)
}

// SpawnInterval returns the enemy spawn period for a stage in milliseconds.
func (d *DifficultyManager) SpawnInterval(baseMs int, stage int) int {
	reduction := int(d.Level(stage) * float64(d.cfg.Scaling.SpawnIntervalReduction))
	result := baseMs - reduction
	if result < 500 { // Keep at least half a second between spawns
		result = 500
	}
	return result
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

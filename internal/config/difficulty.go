package config

import "math"

// DifficultyManager derives the current difficulty from score or elapsed ticks.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns how many engine steps to run per platform tick: 1 at level
// zero, plus round(level * speed_multiplier).
func (d *DifficultyManager) Speed(score int, ticks int) int {
	level := d.Level(score, ticks)
	extra := math.Round(level * d.cfg.Scaling.SpeedMultiplier)
	return 1 + max(int(extra), 0)
}

// FireRate scales a base shoot probability by the current level, capped at 1.
func (d *DifficultyManager) FireRate(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base*(1.0+level*d.cfg.Scaling.FireRateMultiplier), 0.0, 1.0)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

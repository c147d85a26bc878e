package config

import (
	"math"
	"testing"
)

func scoreDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0, FireRateMultiplier: 1.0},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(*DifficultyConfig)
		score    int
		ticks    int
		expected float64
	}{
		{"start", nil, 0, 0, 0.0},
		{"halfway by score", nil, 500, 0, 0.5},
		{"capped", nil, 5000, 0, 1.0},
		{"negative score", nil, -40, 0, 0.0},
		{"by time", func(c *DifficultyConfig) { c.Progression.Type = "time" }, 900, 250, 0.25},
		{"disabled", func(c *DifficultyConfig) { c.Enabled = false; c.InitialLevel = 0.3 }, 900, 0, 0.3},
		{"none", func(c *DifficultyConfig) { c.Progression.Type = "none" }, 900, 0, 0.0},
		{"from initial level", func(c *DifficultyConfig) { c.InitialLevel = 0.5 }, 500, 0, 0.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := scoreDifficulty()
			if tc.cfg != nil {
				tc.cfg(&cfg)
			}
			got := NewDifficultyManager(cfg).Level(tc.score, tc.ticks)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(%d, %d) = %f, expected %f", tc.score, tc.ticks, got, tc.expected)
			}
		})
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	tests := []struct {
		score, expected int
	}{
		{0, 1},
		{200, 1}, // 0.4 rounds down
		{300, 2}, // 0.6 rounds up
		{1000, 3},
		{4000, 3},
	}
	for _, tc := range tests {
		if got := d.Speed(tc.score, 0); got != tc.expected {
			t.Errorf("Speed(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyFireRate(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	if got := d.FireRate(0.01, 0, 0); math.Abs(got-0.01) > 1e-12 {
		t.Errorf("FireRate at level 0 = %f, expected 0.01", got)
	}
	if got := d.FireRate(0.01, 1000, 0); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("FireRate at level 1 = %f, expected 0.02", got)
	}
	if got := d.FireRate(0.9, 1000, 0); got != 1.0 {
		t.Errorf("FireRate should cap at 1, got %f", got)
	}
}

func TestInitialLevelClamps(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 3
	d := NewDifficultyManager(cfg)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level() = %f, expected clamped 1.0", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false when progression is disabled")
	}
}

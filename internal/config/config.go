// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the Space Invaders game.
type InvadersConfig struct {
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Aliens     InvadersAliens   `yaml:"aliens"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersGameplay defines player-facing gameplay parameters.
type InvadersGameplay struct {
	Lives    int `yaml:"lives"`
	TickRate int `yaml:"tick_rate"` // Platform ticks per second
}

// InvadersAliens defines alien behavior. Shoot values are per-alien,
// per-tick probabilities.
type InvadersAliens struct {
	HardShoot        float64 `yaml:"hard_shoot"`
	MediumShoot      float64 `yaml:"medium_shoot"`
	EasyShoot        float64 `yaml:"easy_shoot"`
	MysteryMinPoints int     `yaml:"mystery_min_points"`
	MysteryMaxPoints int     `yaml:"mystery_max_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`     // Extra engine steps per tick
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier"` // Added to the alien shoot rates
}

// Validate reports the first problem that would make the configuration unplayable.
func (c InvadersConfig) Validate() error {
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("config: gameplay.lives must be at least 1, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.TickRate < 1 {
		return fmt.Errorf("config: gameplay.tick_rate must be positive, got %d", c.Gameplay.TickRate)
	}

	rates := []struct {
		name string
		p    float64
	}{
		{"aliens.hard_shoot", c.Aliens.HardShoot},
		{"aliens.medium_shoot", c.Aliens.MediumShoot},
		{"aliens.easy_shoot", c.Aliens.EasyShoot},
	}
	for _, r := range rates {
		if r.p < 0 || r.p > 1 {
			return fmt.Errorf("config: %s must be within [0, 1], got %g", r.name, r.p)
		}
	}

	if c.Aliens.MysteryMinPoints < 0 || c.Aliens.MysteryMaxPoints < c.Aliens.MysteryMinPoints {
		return errors.New("config: mystery points need 0 <= mystery_min_points <= mystery_max_points")
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Aliens.scaleShoot(0.5)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Aliens.scaleShoot(1.5)
	}
}

func (a *InvadersAliens) scaleShoot(f float64) {
	a.HardShoot = clampF(a.HardShoot*f, 0, 1)
	a.MediumShoot = clampF(a.MediumShoot*f, 0, 1)
	a.EasyShoot = clampF(a.EasyShoot*f, 0, 1)
}

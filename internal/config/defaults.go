package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration used when no
// YAML source can be read.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Gameplay: InvadersGameplay{
			Lives:    3,
			TickRate: 30,
		},
		Aliens: InvadersAliens{
			HardShoot:        0.002,
			MediumShoot:      0.001,
			EasyShoot:        0.0005,
			MysteryMinPoints: 10,
			MysteryMaxPoints: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    1.0,
				FireRateMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_endless":
		return defaultInvadersYAML
	default:
		return nil
	}
}

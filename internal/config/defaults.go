package config

import (
	_ "embed"
)

//go:embed defaults/airrush.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no YAML can be
// loaded at all.
func Default() GameConfig {
	return GameConfig{
		Physics: Physics{
			Gravity:      500.0,
			JumpImpulse:  -350.0,
			MaxFallSpeed: 900.0,
		},
		Playfield: Playfield{
			Width:        480.0,
			Height:       800.0,
			GroundHeight: 64.0,
		},
		Obstacles: Obstacles{
			Width:          80.0,
			Height:         600.0,
			SpawnJitterMin: 40.0,
			SpawnJitterMax: 100.0,
			DespawnMargin:  100.0,
		},
		Coins: Coins{
			PeriodMs:      3000,
			Chance:        0.4,
			SafeMargin:    150.0,
			Size:          24.0,
			DespawnMargin: 50.0,
		},
		Player: Player{
			X:           24.0,
			Width:       50.0,
			Height:      24.0,
			HitboxInset: 0.1,
		},
	}
}

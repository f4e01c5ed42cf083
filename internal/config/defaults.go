package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultYAML []byte

// DefaultGameConfig returns the hardcoded configuration. It mirrors the
// embedded defaults/dodger.yaml and is used when that file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Radius:      14,
			Speed:       320,
			StartXRatio: 0.2,
		},
		Obstacles: ObstacleConfig{
			MinRadius:  12,
			MaxRadius:  36,
			MinSlabW:   18,
			MaxSlabW:   40,
			MinSlabH:   60,
			MaxSlabH:   160,
			MinSpeed:   180,
			MaxSpeed:   420,
			SlabChance: 0.3,
		},
		Spawn: SpawnConfig{
			Interval:     0.9,
			Jitter:       0.35,
			MaxObstacles: 48,
		},
		Input: InputConfig{
			HoldMS: 250,
		},
		Audio: AudioConfig{
			Volume: 0.6,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Presets: map[string]PresetConfig{
				DifficultyEasy:   {IntervalScale: 1.4, SpeedScale: 0.75},
				DifficultyNormal: {IntervalScale: 1.0, SpeedScale: 1.0},
				DifficultyHard:   {IntervalScale: 0.7, SpeedScale: 1.3},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodger arena.
package config

import (
	"fmt"
	"time"
)

// GameConfig contains all tunable parameters of the simulation.
// Distances are world units, speeds are world units per second and
// durations are seconds unless the field name says otherwise.
type GameConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	StartXRatio float64 `yaml:"start_x_ratio"` // Start x as a fraction of arena width
}

// ObstacleConfig defines the shape and speed distributions of obstacles.
// Rocks are circles, slabs are upright rectangles.
type ObstacleConfig struct {
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	MinSlabW   float64 `yaml:"min_slab_width"`
	MaxSlabW   float64 `yaml:"max_slab_width"`
	MinSlabH   float64 `yaml:"min_slab_height"`
	MaxSlabH   float64 `yaml:"max_slab_height"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	SlabChance float64 `yaml:"slab_chance"` // Probability in [0, 1] that a spawn is a slab
}

// SpawnConfig defines spawn cadence.
type SpawnConfig struct {
	Interval     float64 `yaml:"interval"`      // Base seconds between spawns
	Jitter       float64 `yaml:"jitter"`        // Relative band around Interval, in [0, 1)
	MaxObstacles int     `yaml:"max_obstacles"` // Spawns are skipped while this many are alive
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last press/repeat.
	// Terminals report no key releases, so auto-repeat keeps a key alive.
	HoldMS int `yaml:"hold_ms"`
}

// Hold returns HoldMS as a duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// AudioConfig defines sound feedback.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // Master volume in [0, 1]; 0 mutes
}

// ValidationError describes a config field with an invalid value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that every value is usable by the simulation.
func (c GameConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Player.Radius > 0, "player.radius", "must be positive"},
		{c.Player.Speed >= 0, "player.speed", "must not be negative"},
		{c.Player.StartXRatio >= 0 && c.Player.StartXRatio <= 1, "player.start_x_ratio", "must be within [0, 1]"},
		{c.Obstacles.MinRadius > 0, "obstacles.min_radius", "must be positive"},
		{c.Obstacles.MaxRadius >= c.Obstacles.MinRadius, "obstacles.max_radius", "must be >= min_radius"},
		{c.Obstacles.MinSlabW > 0 && c.Obstacles.MinSlabH > 0, "obstacles.min_slab_width/height", "must be positive"},
		{c.Obstacles.MaxSlabW >= c.Obstacles.MinSlabW, "obstacles.max_slab_width", "must be >= min_slab_width"},
		{c.Obstacles.MaxSlabH >= c.Obstacles.MinSlabH, "obstacles.max_slab_height", "must be >= min_slab_height"},
		{c.Obstacles.MinSpeed > 0, "obstacles.min_speed", "must be positive"},
		{c.Obstacles.MaxSpeed >= c.Obstacles.MinSpeed, "obstacles.max_speed", "must be >= min_speed"},
		{c.Obstacles.SlabChance >= 0 && c.Obstacles.SlabChance <= 1, "obstacles.slab_chance", "must be within [0, 1]"},
		{c.Spawn.Interval > 0, "spawn.interval", "must be positive"},
		{c.Spawn.Jitter >= 0 && c.Spawn.Jitter < 1, "spawn.jitter", "must be within [0, 1)"},
		{c.Spawn.MaxObstacles > 0, "spawn.max_obstacles", "must be positive"},
		{c.Input.HoldMS >= 0, "input.hold_ms", "must not be negative"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume", "must be within [0, 1]"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}

	for name, p := range c.Difficulty.Presets {
		if p.IntervalScale <= 0 || p.SpeedScale <= 0 {
			return ValidationError{
				Field:   "difficulty.presets." + name,
				Message: "scales must be positive",
			}
		}
	}
	if c.Difficulty.Preset != "" {
		if _, ok := c.Difficulty.Presets[c.Difficulty.Preset]; !ok {
			return ValidationError{
				Field:   "difficulty.preset",
				Message: fmt.Sprintf("unknown preset %q", c.Difficulty.Preset),
			}
		}
	}

	return nil
}

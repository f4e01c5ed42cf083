package config

import (
	"fmt"
	"sort"
)

// DifficultyConfig selects one of the named presets.
type DifficultyConfig struct {
	Preset  string                  `yaml:"preset"`
	Presets map[string]PresetConfig `yaml:"presets"`
}

// PresetConfig scales the base spawn parameters. Presets are static: the
// policy does not change while a run is in progress.
type PresetConfig struct {
	IntervalScale float64 `yaml:"interval_scale"` // Multiplies spawn.interval
	SpeedScale    float64 `yaml:"speed_scale"`    // Multiplies obstacle speeds
}

// Built-in preset names.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// SpawnPolicy is the fully resolved, fixed rule set the simulation uses to
// place new obstacles and time their arrival.
type SpawnPolicy struct {
	Interval     float64 // Base seconds between spawns; the first threshold after a reset
	Jitter       float64 // Later thresholds are uniform in Interval*(1±Jitter)
	MaxObstacles int
	MinSpeed     float64
	MaxSpeed     float64
	MinRadius    float64
	MaxRadius    float64
	MinSlabW     float64
	MaxSlabW     float64
	MinSlabH     float64
	MaxSlabH     float64
	SlabChance   float64
}

// MinThreshold returns the lower edge of the randomized spawn band.
func (p SpawnPolicy) MinThreshold() float64 {
	return p.Interval * (1 - p.Jitter)
}

// MaxThreshold returns the upper edge of the randomized spawn band.
func (p SpawnPolicy) MaxThreshold() float64 {
	return p.Interval * (1 + p.Jitter)
}

// PresetNames returns the configured preset names, sorted.
func (c GameConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Difficulty.Presets))
	for name := range c.Difficulty.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset selects a difficulty preset by name. An empty name keeps the
// configured preset.
func ApplyPreset(cfg *GameConfig, preset string) error {
	if preset == "" {
		return nil
	}
	if _, ok := cfg.Difficulty.Presets[preset]; !ok {
		return fmt.Errorf("config: unknown difficulty %q (available: %v)", preset, cfg.PresetNames())
	}
	cfg.Difficulty.Preset = preset
	return nil
}

// SpawnPolicy resolves the active preset against the base spawn and
// obstacle parameters. A missing preset means no scaling.
func (c GameConfig) SpawnPolicy() SpawnPolicy {
	scale := PresetConfig{IntervalScale: 1, SpeedScale: 1}
	if p, ok := c.Difficulty.Presets[c.Difficulty.Preset]; ok {
		scale = p
	}

	return SpawnPolicy{
		Interval:     c.Spawn.Interval * scale.IntervalScale,
		Jitter:       c.Spawn.Jitter,
		MaxObstacles: c.Spawn.MaxObstacles,
		MinSpeed:     c.Obstacles.MinSpeed * scale.SpeedScale,
		MaxSpeed:     c.Obstacles.MaxSpeed * scale.SpeedScale,
		MinRadius:    c.Obstacles.MinRadius,
		MaxRadius:    c.Obstacles.MaxRadius,
		MinSlabW:     c.Obstacles.MinSlabW,
		MaxSlabW:     c.Obstacles.MaxSlabW,
		MinSlabH:     c.Obstacles.MinSlabH,
		MaxSlabH:     c.Obstacles.MaxSlabH,
		SlabChance:   c.Obstacles.SlabChance,
	}
}

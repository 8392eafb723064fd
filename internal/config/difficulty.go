package config

import "math"

// DifficultyConfig ramps the spike pressure up as the player grows toward
// the winning size.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	MinSpikeInterval float64 `yaml:"min_spike_interval"` // Seconds between spikes at max level
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // Added to spike speed at max level
}

// DifficultyManager calculates spike parameters from the player's progress.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0) for a player of the given
// size, growing linearly from start to goal.
func (d *DifficultyManager) Level(size, start, goal float64) float64 {
	if !d.cfg.Enabled || goal <= start {
		return 0
	}
	return clampF((size-start)/(goal-start), 0.0, 1.0)
}

// SpikeInterval returns the spike spawn interval at the given level.
func (d *DifficultyManager) SpikeInterval(base, level float64) float64 {
	if !d.cfg.Enabled || d.cfg.MinSpikeInterval >= base {
		return base
	}
	// Interval shrinks from base to the configured minimum
	return base - level*(base-d.cfg.MinSpikeInterval)
}

// SpikeSpeed returns the spike speed at the given level.
func (d *DifficultyManager) SpikeSpeed(base, level float64) float64 {
	if !d.cfg.Enabled {
		return base
	}
	// Speed increases from base to base * (1 + speedMultiplier)
	return base * (1.0 + level*d.cfg.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

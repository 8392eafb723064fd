package game

import "github.com/vovakirdan/hungry-pixel/internal/config"

// Settings are the tunable constants of one play session. They are fixed
// once the session starts.
type Settings struct {
	StartSize     float64
	DeathSize     float64
	MaxVelocity   float64 // per axis, pixels/s
	Acceleration  float64 // pixels/s²
	Deterioration float64 // player size lost per second

	EdibleDeterioration float64 // nutrition lost per second
	EdibleSpawnInterval float64 // seconds
	EdibleBounds        [2]int  // min, max size

	SpikeSpawnInterval float64
	SpikeSizeBounds    [2]int
	SpikeSpeedBounds   [2]float64

	PenaltyThreshold float64
	FlatPenalty      float64
	PenaltyRatio     float64

	Difficulty config.DifficultyConfig
}

// NewSettings converts the gameplay section of the configuration.
func NewSettings(cfg config.GameConfig) Settings {
	return Settings{
		StartSize:     cfg.Player.StartSize,
		DeathSize:     cfg.Player.DeathSize,
		MaxVelocity:   cfg.Player.MaxVelocity,
		Acceleration:  cfg.Player.Acceleration,
		Deterioration: cfg.Player.Deterioration,

		EdibleDeterioration: cfg.Edibles.Deterioration,
		EdibleSpawnInterval: cfg.Edibles.SpawnInterval,
		EdibleBounds:        [2]int{cfg.Edibles.MinSize, cfg.Edibles.MaxSize},

		SpikeSpawnInterval: cfg.Spikes.SpawnInterval,
		SpikeSizeBounds:    [2]int{cfg.Spikes.MinSize, cfg.Spikes.MaxSize},
		SpikeSpeedBounds:   [2]float64{cfg.Spikes.MinSpeed, cfg.Spikes.MaxSpeed},

		PenaltyThreshold: cfg.Spikes.PenaltyThreshold,
		FlatPenalty:      cfg.Spikes.FlatPenalty,
		PenaltyRatio:     cfg.Spikes.PenaltyRatio,

		Difficulty: cfg.Difficulty,
	}
}

// DefaultSettings returns the settings of the built-in configuration.
func DefaultSettings() Settings {
	return NewSettings(config.Default().Game)
}

// Penalty returns how much size a spike hit costs a player of the given
// size: a flat amount above the threshold, a share of the size otherwise.
func (s Settings) Penalty(size float64) float64 {
	if size > s.PenaltyThreshold {
		return s.FlatPenalty
	}
	return size * s.PenaltyRatio
}

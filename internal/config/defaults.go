package config

import (
	_ "embed"

	"github.com/vovakirdan/hungry-pixel/internal/engine"
)

//go:embed defaults/hungry-pixel.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/hungry-pixel.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Hungry Pixel",
		},
		TickRate: 64,
		Seed:     0,
		Fonts: []engine.FontSpec{
			{Key: "default", Size: 14},
			{Key: "default-large", Size: 24},
		},
		Game: GameConfig{
			Player: PlayerConfig{
				StartSize:     20,
				DeathSize:     1,
				MaxVelocity:   250,
				Acceleration:  150,
				Deterioration: 0.75,
			},
			Edibles: EdibleConfig{
				SpawnInterval: 2,
				Deterioration: 0.25,
				MinSize:       10,
				MaxSize:       45,
			},
			Spikes: SpikeConfig{
				SpawnInterval:    5,
				MinSize:          10,
				MaxSize:          60,
				MinSpeed:         80,
				MaxSpeed:         200,
				PenaltyThreshold: 40,
				FlatPenalty:      20,
				PenaltyRatio:     0.5,
			},
			Difficulty: DifficultyConfig{
				Enabled:          true,
				MinSpikeInterval: 2,
				SpeedMultiplier:  0.5,
			},
		},
		Bindings: BindingsConfig{
			Up:    "up",
			Down:  "down",
			Left:  "left",
			Right: "right",
		},
		Screens: ScreensConfig{
			IntroMS:    1500,
			GameOverMS: 1000,
			WinMS:      1000,
			CreditsMS:  500,
		},
		Terminal: TerminalConfig{
			KeyReleaseMS: 550,
			AltScreen:    true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
